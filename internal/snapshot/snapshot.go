// Package snapshot holds the read-only view of a session that collaborators
// (renderers, status displays, exporters) consume.
package snapshot

// Piece describes the falling piece.
type Piece struct {
	Kind string `json:"kind"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	// GhostY is where the piece would land if hard-dropped now.
	GhostY int `json:"ghost_y"`
	// Shape holds cell values row by row (0 = empty).
	Shape [][]int `json:"shape"`
}

// Snapshot is a copy of everything a collaborator may read from a session.
type Snapshot struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	// Board is a flat array: Height * Width cells, row-major.
	// Each value is a color index (0 = empty).
	Board []int `json:"board"`

	Piece Piece `json:"piece"`
	// Next is the kind that spawns after the current piece.
	Next string `json:"next"`
	// NextShape is the spawn orientation of Next, for a preview panel.
	NextShape [][]int `json:"next_shape"`

	Score  int  `json:"score"`
	Level  int  `json:"level"`
	Lines  int  `json:"lines"`
	Games  int  `json:"games"`
	Paused bool `json:"paused"`
}

// At returns the locked cell at (x, y), or 0 when out of range.
func (s Snapshot) At(x, y int) int {
	if x < 0 || x >= s.Width || y < 0 || y >= s.Height {
		return 0
	}
	idx := y*s.Width + x
	if idx >= len(s.Board) {
		return 0
	}
	return s.Board[idx]
}

// PieceAt returns the falling piece's cell covering (x, y), or 0.
func (s Snapshot) PieceAt(x, y int) int {
	return shapeAt(s.Piece.Shape, x-s.Piece.X, y-s.Piece.Y)
}

// GhostAt reports whether the landing preview covers (x, y).
func (s Snapshot) GhostAt(x, y int) bool {
	return shapeAt(s.Piece.Shape, x-s.Piece.X, y-s.Piece.GhostY) != 0
}

func shapeAt(shape [][]int, lx, ly int) int {
	if ly < 0 || ly >= len(shape) || lx < 0 || lx >= len(shape[ly]) {
		return 0
	}
	return shape[ly][lx]
}
