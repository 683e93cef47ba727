package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hersh/tetromino/internal/game"
	"github.com/hersh/tetromino/internal/piece"
)

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("15"))

	infoStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("15"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("51"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Align(lipgloss.Center)

	ghostColor = lipgloss.Color("244")
)

func blockStyle(c piece.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}

// RenderBoard draws settled cells, the ghost and the falling piece.
func RenderBoard(s *game.Session) string {
	var sb strings.Builder

	active := make(map[piece.Point]bool, 4)
	for _, pt := range s.Current.Cells() {
		active[pt] = true
	}
	ghost := make(map[piece.Point]bool, 4)
	for _, pt := range s.GhostCells() {
		ghost[pt] = true
	}

	for y := 0; y < s.Board.Height(); y++ {
		for x := 0; x < s.Board.Width(); x++ {
			pt := piece.Point{X: x, Y: y}
			cell := s.Board.At(x, y)

			switch {
			case active[pt]:
				sb.WriteString(blockStyle(s.Current.Color).Render("██"))
			case !cell.IsEmpty():
				sb.WriteString(blockStyle(cell).Render("██"))
			case ghost[pt]:
				sb.WriteString(lipgloss.NewStyle().Foreground(ghostColor).Render("[]"))
			default:
				sb.WriteString("  ")
			}
		}
		if y < s.Board.Height()-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

// RenderPiece draws a shape preview in a 3x4 box.
func RenderPiece(id piece.ShapeID) string {
	p := piece.New(id, piece.Point{X: 1, Y: 1})
	cells := make(map[piece.Point]bool, 4)
	for _, pt := range p.Cells() {
		cells[pt] = true
	}

	var sb strings.Builder
	style := blockStyle(p.Color)
	for y := 0; y < 4; y++ {
		for x := 0; x < 3; x++ {
			if cells[piece.Point{X: x, Y: y}] {
				sb.WriteString(style.Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
		if y < 3 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func RenderInfo(s *game.Session) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("GOTRIS") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Player: %s", s.PlayerName)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Lines: %d", s.Lines)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Pieces: %d", s.Pieces)) + "\n\n")

	sb.WriteString(titleStyle.Render("NEXT") + "\n")
	sb.WriteString(RenderPiece(s.NextShape()) + "\n")

	return sb.String()
}

func RenderGameOver(lines, pieces int) string {
	return gameOverStyle.Render(fmt.Sprintf("\n\n\n     GAME OVER     \n     Lines: %d     \n     Pieces: %d     \n\n\n", lines, pieces))
}

func RenderWelcome() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		Align(lipgloss.Center).
		Render(`
╔══════════════════════════════╗
║          G O T R I S         ║
╚══════════════════════════════╝

   [1] Start

   Press 1/S/ENTER to start
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
  Ctrl+C Quit
`)
}
