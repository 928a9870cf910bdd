package tui

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/blockfall/internal/game"
)

const (
	frameInterval  = 16 * time.Millisecond
	noticeDuration = 2 * time.Second
)

// --- Custom tea.Msg types ---

// FrameMsg drives gravity; it carries the time the frame fired.
type FrameMsg time.Time

// --- Screens ---

type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenPlaying
)

// --- Model ---

type Model struct {
	screen  Screen
	session *game.Session
	width   int
	height  int

	lastFrame time.Time
	running   bool

	notice      string
	noticeUntil time.Time
}

// NewModel creates the TUI around an existing session. The session does not
// advance until the player leaves the welcome screen.
func NewModel(session *game.Session) Model {
	return Model{
		screen:  ScreenWelcome,
		session: session,
	}
}

// Session returns the session driven by the model.
func (m Model) Session() *game.Session {
	return m.session
}

func (m Model) Init() tea.Cmd {
	return nil
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// --- Update ---

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}
	return m, nil
}

// --- Key handlers ---

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	switch m.screen {
	case ScreenWelcome:
		return m.handleWelcomeKeys(msg)
	case ScreenPlaying:
		return m.handlePlayingKeys(msg)
	}
	return m, nil
}

func (m Model) handleWelcomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "s", " ":
		m.screen = ScreenPlaying
		m.lastFrame = time.Time{}
		if m.running {
			return m, nil
		}
		m.running = true
		return m, frameCmd()
	}
	return m, nil
}

func (m Model) handlePlayingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session

	switch msg.String() {
	case "p":
		paused := s.TogglePause()
		log.Printf("pause=%v score=%d", paused, s.Score())
		return m, nil
	case "r":
		s.Restart()
		log.Printf("restart")
		m.setNotice("RESTARTED", time.Now())
		return m, nil
	}

	if s.Paused() {
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		s.MoveLeft()
	case "right", "l":
		s.MoveRight()
	case "down", "j":
		if s.SoftDrop() {
			m.afterLock()
		}
	case "up", "x":
		s.Rotate(1)
	case "z":
		s.Rotate(-1)
	case " ", "c":
		s.HardDrop()
		m.afterLock()
	}
	return m, nil
}

// --- Frame handler ---

func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if m.screen != ScreenPlaying {
		m.running = false
		return m, nil
	}

	var dt time.Duration
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	locks := m.session.Locks()
	m.session.Advance(dt)
	if m.session.Locks() != locks {
		m.afterLock()
	}
	if !m.noticeUntil.IsZero() && now.After(m.noticeUntil) {
		m.notice = ""
		m.noticeUntil = time.Time{}
	}

	return m, frameCmd()
}

// afterLock reports the outcome of the lock that just happened.
func (m *Model) afterLock() {
	res := m.session.LastLock()
	switch {
	case res.GameOver:
		log.Printf("game over: games=%d", m.session.Games())
		m.setNotice("GAME OVER", time.Now())
	case res.Cleared >= 2:
		log.Printf("cleared %d rows for %d points (score=%d level=%d)",
			res.Cleared, res.Points, m.session.Score(), m.session.Level())
		m.setNotice(clearLabel(res.Cleared), time.Now())
	}
}

func (m *Model) setNotice(text string, now time.Time) {
	m.notice = text
	m.noticeUntil = now.Add(noticeDuration)
}

func clearLabel(n int) string {
	switch n {
	case 2:
		return "DOUBLE"
	case 3:
		return "TRIPLE"
	default:
		return "TETRIS"
	}
}

// --- View ---

func (m Model) View() string {
	switch m.screen {
	case ScreenWelcome:
		return m.renderCentered(RenderWelcome())
	case ScreenPlaying:
		return m.renderPlaying()
	}
	return ""
}

func (m Model) renderCentered(content string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (m Model) renderPlaying() string {
	snap := m.session.Snapshot()

	board := RenderBoard(snap)
	if snap.Paused {
		board = lipgloss.JoinVertical(lipgloss.Center, board, pausedStyle.Render("PAUSED"))
	} else if m.notice != "" {
		board = lipgloss.JoinVertical(lipgloss.Center, board, noticeStyle.Render(m.notice))
	}

	leftPanel := lipgloss.NewStyle().
		Width(24).
		Render(RenderInfo(snap))

	centerPanel := lipgloss.NewStyle().
		Padding(1, 2).
		Render(board)

	rightPanel := lipgloss.NewStyle().
		Padding(1, 0).
		Render(RenderControls())

	return m.renderCentered(lipgloss.JoinHorizontal(
		lipgloss.Top,
		leftPanel,
		centerPanel,
		rightPanel,
	))
}
