package tui

import (
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hersh/blockfall/internal/config"
	"github.com/hersh/blockfall/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newPlayingModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Default()
	m := NewModel(game.NewWithSource(cfg, rand.NewSource(3)))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "starting play schedules the first frame")
	m = next.(Model)
	require.Equal(t, ScreenPlaying, m.screen)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestWelcomeIgnoresGameKeys(t *testing.T) {
	m := NewModel(game.NewWithSource(config.Default(), rand.NewSource(3)))
	x := m.Session().Active().X

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, ScreenWelcome, m.screen)
	assert.Equal(t, x, m.Session().Active().X)
	assert.Contains(t, m.View(), "B L O C K F A L L")
}

func TestMoveKeys(t *testing.T) {
	m := newPlayingModel(t)
	x := m.Session().Active().X

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, x-1, m.Session().Active().X)

	m = update(t, m, runes("l"))
	m = update(t, m, runes("l"))
	assert.Equal(t, x+1, m.Session().Active().X)
}

func TestHardDropKeyLocks(t *testing.T) {
	m := newPlayingModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, 1, m.Session().Locks())
	assert.Equal(t, 4, m.Session().Field().Filled())
}

func TestPauseBlocksPieceInput(t *testing.T) {
	m := newPlayingModel(t)
	x := m.Session().Active().X

	m = update(t, m, runes("p"))
	require.True(t, m.Session().Paused())
	assert.Contains(t, m.View(), "PAUSED")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, x, m.Session().Active().X)
	assert.Equal(t, 0, m.Session().Locks())

	m = update(t, m, runes("p"))
	assert.False(t, m.Session().Paused())
}

func TestRestartKey(t *testing.T) {
	m := newPlayingModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.NotZero(t, m.Session().Field().Filled())

	m = update(t, m, runes("r"))
	assert.Zero(t, m.Session().Field().Filled())
	assert.Contains(t, m.View(), "RESTARTED")
}

func TestFramesApplyGravity(t *testing.T) {
	m := newPlayingModel(t)
	y := m.Session().Active().Y
	start := time.Now()

	next, cmd := m.Update(FrameMsg(start))
	m = next.(Model)
	assert.NotNil(t, cmd, "frames keep scheduling frames")
	assert.Equal(t, y, m.Session().Active().Y)

	m = update(t, m, FrameMsg(start.Add(500*time.Millisecond)))
	assert.Equal(t, y, m.Session().Active().Y)

	m = update(t, m, FrameMsg(start.Add(1100*time.Millisecond)))
	assert.Equal(t, y+1, m.Session().Active().Y)
}

func TestNoticeExpires(t *testing.T) {
	m := newPlayingModel(t)
	now := time.Now()
	m.setNotice("TETRIS", now)

	m = update(t, m, FrameMsg(now.Add(time.Second)))
	assert.Equal(t, "TETRIS", m.notice)

	m = update(t, m, FrameMsg(now.Add(3*time.Second)))
	assert.Empty(t, m.notice)
}

func TestQuit(t *testing.T) {
	m := newPlayingModel(t)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPlayingViewShowsStatus(t *testing.T) {
	m := newPlayingModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	view := m.View()
	assert.Contains(t, view, "Score: 0")
	assert.Contains(t, view, "Level: 0")
	assert.Contains(t, view, "Lines: 0")
	assert.Contains(t, view, "NEXT")
	assert.True(t, strings.Contains(view, "██"))
}
