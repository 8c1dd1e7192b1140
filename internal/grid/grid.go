package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Special cell values
const (
	Empty       = 0
	InvalidCell = -1
	CellCount   = 81
)

// Bitmask values
const (
	allNine = 511
)

// Parse errors. ErrContradiction is reported at construction time, before
// any search runs, when two clues in the same row, column, or box collide.
var (
	ErrWrongLength      = errors.New("input must be exactly 81 characters")
	ErrInvalidCharacter = errors.New("input may contain only '1'-'9', '.' or '0'")
	ErrContradiction    = errors.New("clues violate Sudoku constraints")
)

// Grid represents a 9x9 Sudoku grid.
type Grid struct {
	cells [CellCount]int

	// Bitmasks track placed digits in each unit (row/col/box).
	// Bit i represents digit i+1 (bit 0 = digit 1, bit 8 = digit 9).
	// Candidate sets are derived from these, so an open cell can never
	// hold a candidate already fixed in one of its peers.
	rowMasks [9]uint
	colMasks [9]uint
	boxMasks [9]uint

	// emptyCount tracks unfilled cells for quick completion checks.
	// Once initialized, emptyCount should only be touched inside Set and Clear.
	emptyCount int
}

// New creates an empty Grid.
func New() *Grid {
	return &Grid{emptyCount: CellCount}
}

// Parse creates a Grid from an 81-character row-major string.
// Use '.' or '0' for empty cells, '1'-'9' for clues.
func Parse(s string) (*Grid, error) {
	if len(s) != CellCount {
		return nil, fmt.Errorf("%w: got %d", ErrWrongLength, len(s))
	}

	g := New()
	for pos := 0; pos < CellCount; pos++ {
		ch := s[pos]
		switch ch {
		case '.', '0':
			// Empty cell, already initialized
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			val := int(ch - '0')
			if err := g.Set(pos, val); err != nil {
				return nil, fmt.Errorf("%w: clue %d at position %d", ErrContradiction, val, pos)
			}
		default:
			return nil, fmt.Errorf("%w: '%c' at position %d", ErrInvalidCharacter, ch, pos)
		}
	}
	return g, nil
}

// Clone creates an independent copy of the Grid.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	clone := *g
	return &clone
}

// Set attempts to place a value 1-9 at the given position.
// Returns an error if the placement violates Sudoku rules or parameters are invalid.
func (g *Grid) Set(pos, val int) error {
	if err := g.validatePosition(pos); err != nil {
		return err
	}
	if err := g.validateValue(val); err != nil {
		return err
	}
	if val == Empty {
		return g.Clear(pos)
	}
	if g.cells[pos] != Empty {
		g.Clear(pos)
	}

	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	// Check if value already exists in row, column, or box for Sudoku rules
	if g.rowMasks[row]&mask != 0 {
		return fmt.Errorf("%w: value %d already in row %d", ErrIllegalMove, val, row)
	}
	if g.colMasks[col]&mask != 0 {
		return fmt.Errorf("%w: value %d already in column %d", ErrIllegalMove, val, col)
	}
	if g.boxMasks[box]&mask != 0 {
		return fmt.Errorf("%w: value %d already in box %d", ErrIllegalMove, val, box)
	}

	// Modify the grid only once we know it's legal to do so
	g.cells[pos] = val
	g.rowMasks[row] |= mask
	g.colMasks[col] |= mask
	g.boxMasks[box] |= mask
	g.emptyCount--

	return nil
}

// SetForce places a value without validation checks.
// Use only when certain the move is valid.
func (g *Grid) SetForce(pos, val int) {
	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	g.cells[pos] = val
	g.rowMasks[row] |= mask
	g.colMasks[col] |= mask
	g.boxMasks[box] |= mask
	g.emptyCount--
}

// Clear removes the value at the given position.
// Returns an error if the position is invalid.
// No harm is done calling Clear on an already empty cell.
func (g *Grid) Clear(pos int) error {
	if err := g.validatePosition(pos); err != nil {
		return err
	}

	// Exit early if the cell is already empty, no harm no foul
	val := g.cells[pos]
	if val == Empty {
		return nil
	}

	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	mask := uint(1 << (val - 1))

	g.cells[pos] = Empty
	g.rowMasks[row] &^= mask
	g.colMasks[col] &^= mask
	g.boxMasks[box] &^= mask
	g.emptyCount++

	return nil
}

// Get returns the value at the given position.
// Returns InvalidCell for invalid positions.
func (g *Grid) Get(pos int) int {
	if !isValidPosition(pos) {
		return InvalidCell
	}
	return g.cells[pos]
}

// CandidatesMask returns the bitmask of candidates for a given position.
// A returned 0 indicates an unsolvable grid or an invalid position.
func (g *Grid) CandidatesMask(pos int) uint {
	if !isValidPosition(pos) {
		return 0
	}
	row, col, box := posToRow[pos], posToCol[pos], posToBox[pos]
	return allNine &^ g.rowMasks[row] &^ g.colMasks[col] &^ g.boxMasks[box]
}

// Candidates returns a slice of candidates 1-9 for a given position,
// in ascending order. An empty slice indicates an unsolvable grid or an
// invalid position.
func (g *Grid) Candidates(pos int) []int {
	mask := g.CandidatesMask(pos)
	candidates := make([]int, 0, 9)
	for num := 1; num <= 9; num++ {
		if mask&uint(1<<(num-1)) != 0 {
			candidates = append(candidates, num)
		}
	}
	return candidates
}

// EmptyCount returns the number of empty cells on the grid.
func (g *Grid) EmptyCount() int {
	return g.emptyCount
}

// ClueCount returns the number of filled cells on the grid.
func (g *Grid) ClueCount() int {
	return CellCount - g.emptyCount
}

// String returns the grid as an 81-character string.
// Empty cells are represented as '.', filled cells as '1'-'9'.
// For a fully solved grid the result is digits only, in the same
// row-major order as Parse input.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(CellCount)

	for _, cell := range g.cells {
		if cell == Empty {
			sb.WriteByte('.')
		} else {
			sb.WriteByte('0' + byte(cell))
		}
	}

	return sb.String()
}

// Format returns a human-readable grid representation with box rules.
func (g *Grid) Format() string {
	var sb strings.Builder
	line := "+-------+-------+-------+\n"
	sb.WriteString(line)

	for row := 0; row < 9; row++ {
		sb.WriteString("| ")
		for col := 0; col < 9; col++ {
			val := g.Get(MakePos(row, col))
			if val == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(val))
			}
			sb.WriteByte(' ')

			if (col+1)%3 == 0 {
				sb.WriteString("| ")
			}
		}
		sb.WriteString("\n")

		if (row+1)%3 == 0 {
			sb.WriteString(line)
		}
	}

	return sb.String()
}
