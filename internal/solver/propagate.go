package solver

import (
	"math/bits"

	"github.com/DimitriosCha/sudoku-solver/internal/grid"
)

// PropagateConstraints reduces the solver's grid to a stable state:
// every forced value is assigned, no guessing. Returns ErrNoSolution if
// the grid reaches a contradiction (an open cell with no candidates).
// Running it again on an already-stable grid is a no-op.
func (s *Solver) PropagateConstraints() error {
	return propagate(s.Grid)
}

// propagate cascades eliminations from every fixed cell of g.
func propagate(g *grid.Grid) error {
	queue := make([]int, 0, grid.CellCount)
	for pos := 0; pos < grid.CellCount; pos++ {
		if g.Get(pos) != grid.Empty {
			queue = append(queue, pos)
		}
	}
	return reduce(g, queue)
}

// reduce drains a queue of freshly fixed cells. For each one it inspects
// the open peers: zero remaining candidates is a contradiction, exactly
// one is a naked single, which gets assigned and enqueued in turn. Once
// the queue is empty a hidden-singles pass over all units may refill it.
func reduce(g *grid.Grid, queue []int) error {
	for {
		for len(queue) > 0 {
			pos := queue[0]
			queue = queue[1:]

			for _, peer := range grid.Peers(pos) {
				if g.Get(peer) != grid.Empty {
					continue
				}
				mask := g.CandidatesMask(peer)
				if mask == 0 {
					return ErrNoSolution
				}
				if bits.OnesCount(mask) == 1 {
					g.SetForce(peer, bits.TrailingZeros(mask)+1)
					queue = append(queue, peer)
				}
			}
		}

		fixed := applyHiddenSingles(g)
		if len(fixed) == 0 {
			return nil
		}
		queue = append(queue, fixed...)
	}
}

// applyHiddenSingles assigns values that have a single possible position
// within a row, column, or box, and returns the positions it fixed.
func applyHiddenSingles(g *grid.Grid) []int {
	var fixed []int

	for unit := 0; unit < 9; unit++ {
		fixed = hiddenSinglesInUnit(g, grid.RowCells(unit), fixed)
		fixed = hiddenSinglesInUnit(g, grid.ColCells(unit), fixed)
		fixed = hiddenSinglesInUnit(g, grid.BoxCells(unit), fixed)
	}

	return fixed
}

// hiddenSinglesInUnit scans one unit for values with exactly one open home.
func hiddenSinglesInUnit(g *grid.Grid, cells [9]int, fixed []int) []int {
	// Track how many open cells can take each value, and where.
	var counts [10]int
	var home [10]int

	for _, pos := range cells {
		if g.Get(pos) != grid.Empty {
			continue
		}
		mask := g.CandidatesMask(pos)
		for val := 1; val <= 9; val++ {
			if mask&(1<<(val-1)) != 0 {
				counts[val]++
				home[val] = pos
			}
		}
	}

	for val := 1; val <= 9; val++ {
		if counts[val] != 1 {
			continue
		}
		pos := home[val]
		// An earlier assignment in this same pass may have filled the cell
		// or eliminated the candidate. Skip the stale inference; the next
		// pass recomputes it from the updated grid.
		if g.Get(pos) != grid.Empty || g.CandidatesMask(pos)&(1<<(val-1)) == 0 {
			continue
		}
		g.SetForce(pos, val)
		fixed = append(fixed, pos)
	}

	return fixed
}
