package game

import (
	"math/rand"
	"time"

	"github.com/hersh/blockfall/internal/bag"
	"github.com/hersh/blockfall/internal/config"
	"github.com/hersh/blockfall/internal/field"
	"github.com/hersh/blockfall/internal/piece"
	"github.com/hersh/blockfall/internal/snapshot"
)

// LockResult describes what happened when the last piece locked.
type LockResult struct {
	Cleared int
	Points  int
	// GameOver is set when the following spawn collided and the session
	// was reset.
	GameOver bool
}

// Session is one running game: the field, the falling piece, the bag and
// the counters. It is not safe for concurrent use.
type Session struct {
	field   *field.Field
	bag     *bag.Bag
	gravity Gravity

	active  ActivePiece
	next    piece.Kind
	hasNext bool

	score  int
	level  int
	lines  int
	games  int
	locks  int
	paused bool

	dropCounter time.Duration
	lastLock    LockResult
}

// New starts a session with the first piece already falling.
func New(cfg config.Config) *Session {
	return NewWithSource(cfg, rand.NewSource(cfg.ResolveSeed()))
}

// NewWithSource is New with an explicit randomness source for the bag.
func NewWithSource(cfg config.Config, src rand.Source) *Session {
	s := &Session{
		field: field.New(cfg.Width, cfg.Height),
		bag:   bag.New(src),
		gravity: Gravity{
			Base:    cfg.BaseInterval,
			Speedup: cfg.LevelSpeedup,
			Floor:   cfg.MinInterval,
		},
	}
	s.spawnNext()
	return s
}

// spawnNext brings the queued kind into play and queues another. A spawn
// that collides ends the game: the field and counters are reset.
func (s *Session) spawnNext() bool {
	if !s.hasNext {
		s.next = s.bag.Next()
		s.hasNext = true
	}
	s.active = spawnActive(s.next, s.field.Width())
	s.next = s.bag.Next()

	if s.active.collides(s.field) {
		s.field.Clear()
		s.resetCounters()
		s.games++
		return false
	}
	return true
}

func (s *Session) resetCounters() {
	s.score = 0
	s.lines = 0
	s.level = 0
}

// lock merges the active piece, clears rows and spawns the next piece.
func (s *Session) lock() {
	s.field.Merge(s.active.Shape, s.active.X, s.active.Y)

	res := LockResult{Cleared: s.field.Sweep()}
	if res.Cleared > 0 {
		res.Points = LinePoints(res.Cleared, s.level)
		s.lines += res.Cleared
		s.score += res.Points
		s.level = LevelFor(s.lines)
	}

	res.GameOver = !s.spawnNext()
	s.lastLock = res
	s.locks++
}

func (s *Session) Move(dir int) bool {
	return s.active.Move(s.field, dir)
}

func (s *Session) MoveLeft() bool  { return s.Move(-1) }
func (s *Session) MoveRight() bool { return s.Move(1) }

// Rotate turns the piece clockwise for dir > 0 and counter-clockwise for
// dir < 0.
func (s *Session) Rotate(dir int) bool {
	return s.active.Rotate(s.field, dir)
}

// SoftDrop moves the piece down a row, locking it if it cannot move. It
// reports whether a lock happened. The gravity timer restarts either way.
func (s *Session) SoftDrop() bool {
	s.dropCounter = 0
	if s.active.Drop(s.field) {
		s.lock()
		return true
	}
	return false
}

// HardDrop drops the piece to the floor and locks it.
func (s *Session) HardDrop() {
	s.active.HardDrop(s.field)
	s.lock()
	s.dropCounter = 0
}

// Advance feeds elapsed time to gravity. When the accumulated time passes
// the current interval the piece drops one row. It reports whether that
// happened. Nothing accumulates while paused.
func (s *Session) Advance(dt time.Duration) bool {
	if s.paused {
		return false
	}
	s.dropCounter += dt
	if s.dropCounter > s.GravityInterval() {
		s.SoftDrop()
		return true
	}
	return false
}

// Restart clears the field and counters. The falling piece stays where it
// is.
func (s *Session) Restart() {
	s.field.Clear()
	s.resetCounters()
	s.dropCounter = 0
	s.lastLock = LockResult{}
}

func (s *Session) TogglePause() bool {
	s.paused = !s.paused
	return s.paused
}

func (s *Session) Paused() bool                   { return s.paused }
func (s *Session) Score() int                     { return s.score }
func (s *Session) Level() int                     { return s.level }
func (s *Session) Lines() int                     { return s.lines }
func (s *Session) Games() int                     { return s.games }
func (s *Session) Locks() int                     { return s.locks }
func (s *Session) Next() piece.Kind               { return s.next }
func (s *Session) Field() *field.Field            { return s.field }
func (s *Session) LastLock() LockResult           { return s.lastLock }
func (s *Session) GravityInterval() time.Duration { return s.gravity.Interval(s.level) }

// Active returns a copy of the falling piece.
func (s *Session) Active() ActivePiece {
	p := s.active
	p.Shape = p.Shape.Clone()
	return p
}

func (s *Session) GhostY() int {
	return s.active.GhostY(s.field)
}

// Snapshot copies the state collaborators need to draw the game.
func (s *Session) Snapshot() snapshot.Snapshot {
	return snapshot.Snapshot{
		Width:  s.field.Width(),
		Height: s.field.Height(),
		Board:  s.field.ToFlat(),
		Piece: snapshot.Piece{
			Kind:   s.active.Kind.String(),
			X:      s.active.X,
			Y:      s.active.Y,
			GhostY: s.GhostY(),
			Shape:  toInts(s.active.Shape),
		},
		Next:      s.next.String(),
		NextShape: toInts(piece.New(s.next)),
		Score:     s.score,
		Level:     s.level,
		Lines:     s.lines,
		Games:     s.games,
		Paused:    s.paused,
	}
}

func toInts(m piece.Matrix) [][]int {
	out := make([][]int, len(m))
	for y, row := range m {
		out[y] = make([]int, len(row))
		for x, c := range row {
			out[y][x] = int(c)
		}
	}
	return out
}
