package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DimitriosCha/sudoku-solver/internal/grid"
)

var (
	clueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")) // Clues: bold pink

	solvedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Solver-filled cells: light gray

	frameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Box rules: dark gray
)

// renderGrid renders a solved grid with the original clues highlighted.
func renderGrid(puzzle, solution *grid.Grid) string {
	var sb strings.Builder
	line := frameStyle.Render("+-------+-------+-------+")

	sb.WriteString(line)
	sb.WriteByte('\n')

	for row := 0; row < 9; row++ {
		sb.WriteString(frameStyle.Render("|"))
		for col := 0; col < 9; col++ {
			pos := grid.MakePos(row, col)
			cell := string(byte('0' + solution.Get(pos)))

			sb.WriteByte(' ')
			if puzzle.Get(pos) != grid.Empty {
				sb.WriteString(clueStyle.Render(cell))
			} else {
				sb.WriteString(solvedStyle.Render(cell))
			}

			if (col+1)%3 == 0 {
				sb.WriteByte(' ')
				sb.WriteString(frameStyle.Render("|"))
			}
		}
		sb.WriteByte('\n')

		if (row+1)%3 == 0 {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
