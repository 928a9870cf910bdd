package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hersh/blockfall/internal/snapshot"
)

var (
	// indexed by cell value: T, O, L, J, I, S, Z
	colors = []string{
		"",
		"#800080",
		"#FFFF00",
		"#FF8000",
		"#0000FF",
		"#00FFFF",
		"#00FF00",
		"#FF0000",
	}

	ghostColor = "244"

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15"))

	infoStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	pausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("226"))

	noticeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196"))
)

func cellColor(v int) string {
	if v <= 0 || v >= len(colors) {
		return "248"
	}
	return colors[v]
}

// RenderBoard draws locked cells, the landing preview and the falling piece.
func RenderBoard(s snapshot.Snapshot) string {
	var sb strings.Builder

	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			char := "  "
			color := ""

			if v := s.At(x, y); v != 0 {
				char = "██"
				color = cellColor(v)
			} else if s.GhostAt(x, y) {
				char = "[]"
				color = ghostColor
			}
			if v := s.PieceAt(x, y); v != 0 {
				char = "██"
				color = cellColor(v)
			}

			if color == "" {
				sb.WriteString(char)
				continue
			}
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(color)).
				Render(char))
		}
		if y < s.Height-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

// RenderShape draws a piece preview, skipping fully empty rows.
func RenderShape(shape [][]int) string {
	if len(shape) == 0 {
		return "Empty"
	}

	var lines []string
	for _, row := range shape {
		var sb strings.Builder
		filled := false
		for _, v := range row {
			if v != 0 {
				filled = true
				sb.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(cellColor(v))).
					Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
		if filled {
			lines = append(lines, sb.String())
		}
	}

	return strings.Join(lines, "\n")
}

func RenderInfo(s snapshot.Snapshot) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("BLOCKFALL") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d", s.Score)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Level: %d", s.Level)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Lines: %d", s.Lines)) + "\n")
	if s.Games > 0 {
		sb.WriteString(infoStyle.Render(fmt.Sprintf("Games: %d", s.Games+1)) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(titleStyle.Render("NEXT") + "\n")
	sb.WriteString(RenderShape(s.NextShape) + "\n")

	return sb.String()
}

func RenderWelcome() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		Align(lipgloss.Center).
		Render(`
╔══════════════════════════════╗
║      B L O C K F A L L       ║
║   Falling-block puzzle TUI   ║
╚══════════════════════════════╝

   Press ENTER or S to start
   Press Q to quit
`)
}

func RenderControls() string {
	return infoStyle.Render(`
Controls:
  ← →    Move left/right
  ↓      Soft drop
  Space  Hard drop
  ↑/X    Rotate clockwise
  Z      Rotate counter-clockwise
  P      Pause
  R      Restart
  Q      Quit
`)
}
