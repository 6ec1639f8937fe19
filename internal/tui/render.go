package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lowrey/pivotfall/internal/game"
)

var (
	colors = []string{
		"0",
		"196", // Z red
		"46",  // S green
		"226", // O yellow
		"21",  // J blue
		"201", // T magenta
		"51",  // I cyan
		"208", // L orange
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

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")).
			Align(lipgloss.Center)
)

// RenderBoard draws the locked grid with the falling piece and its ghost
// composited on top. The piece is never written into the board itself.
func RenderBoard(s *game.Session) string {
	pieceCells := make(map[game.Point]bool, 4)
	for _, c := range s.Current.Cells() {
		pieceCells[c] = true
	}

	ghost := *s.Current
	ghost.PivotY = s.GhostRow()
	ghostCells := make(map[game.Point]bool, 4)
	for _, c := range ghost.Cells() {
		ghostCells[c] = true
	}

	pieceColor := colors[s.Current.Color()]

	var sb strings.Builder
	for y := 0; y < s.Board.Height; y++ {
		for x := 0; x < s.Board.Width; x++ {
			char := "  "
			color := "0"

			cell := s.Board.Cells[y][x]
			switch {
			case pieceCells[game.Point{X: x, Y: y}]:
				char = "██"
				color = pieceColor
			case cell.Filled:
				char = "██"
				color = colors[cell.Color]
			case ghostCells[game.Point{X: x, Y: y}]:
				char = "[]"
				color = ghostColor
			}

			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(color)).
				Render(char))
		}
		if y < s.Board.Height-1 {
			sb.WriteString("\n")
		}
	}

	return boardStyle.Render(sb.String())
}

// RenderPiecePreview draws a kind at rotation 0 on its own tiny grid.
func RenderPiecePreview(k game.Kind) string {
	offsets := game.RotationOffsets(k, 0)

	minX, minY, maxX, maxY := 0, 0, 0, 0
	occupied := make(map[game.Point]bool, 4)
	for _, o := range offsets {
		occupied[o] = true
		minX, maxX = min(minX, o.X), max(maxX, o.X)
		minY, maxY = min(minY, o.Y), max(maxY, o.Y)
	}

	pieceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(colors[k.Color()]))

	var sb strings.Builder
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if occupied[game.Point{X: x, Y: y}] {
				sb.WriteString(pieceStyle.Render("██"))
			} else {
				sb.WriteString("  ")
			}
		}
		if y < maxY {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func RenderInfo(s *game.Session) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("PIVOTFALL") + "\n\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Score: %d", s.Score)) + "\n")
	sb.WriteString(infoStyle.Render(fmt.Sprintf("Speed: %.2fs", s.FallSpeed().Seconds())) + "\n\n")

	sb.WriteString(titleStyle.Render("NEXT") + "\n")
	sb.WriteString(RenderPiecePreview(s.Next.Kind) + "\n\n")

	sb.WriteString(RenderControls())

	return sb.String()
}

func RenderWelcome() string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("51")).
		Align(lipgloss.Center).
		Render(`
╔══════════════════════════════╗
║      P I V O T F A L L       ║
║   Falling blocks, terminal   ║
╚══════════════════════════════╝

   Press ENTER to play
   Press Q to quit
`)
}

func RenderGameOver(score int) string {
	return gameOverStyle.Render(fmt.Sprintf("\n\n\n     GAME OVER     \n     Score: %d     \n\n\n", score))
}

func RenderControls() string {
	return infoStyle.Render(`
Controls:
  ← →    Move left/right
  ↓      Soft drop
  Space  Hard drop
  ↑/X    Rotate
  Q      Quit (menu)
`)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
