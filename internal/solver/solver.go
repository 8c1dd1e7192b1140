package solver

import (
	"context"
	"errors"
	"time"

	"github.com/DimitriosCha/sudoku-solver/internal/grid"
)

var (
	ErrNoSolution        = errors.New("puzzle has no solution")
	ErrMultipleSolutions = errors.New("puzzle has multiple solutions")
	ErrInvalidPuzzle     = errors.New("puzzle violates Sudoku constraints")
	ErrTimeout           = errors.New("solver budget exceeded")
)

// errStopSearch unwinds the search once enough solutions were found or a
// budget ran out. It never escapes Solve.
var errStopSearch = errors.New("stop search")

// Solver fills Sudoku grids with constraint propagation and
// minimum-remaining-value backtracking.
type Solver struct {
	Grid    *grid.Grid
	options *Options

	nodes     int
	aborted   bool
	duration  time.Duration
	solutions []*grid.Grid
}

// Stats describes the work done by the last Solve call.
type Stats struct {
	Nodes     int
	Solutions int
	Duration  time.Duration
}

// New creates a solver for the given grid.
// The options are copied, so one Options value can configure many solvers
// running concurrently.
func New(g *grid.Grid, options *Options) *Solver {
	opts := DefaultOptions()
	if options != nil {
		o := *options
		opts = &o
	}
	if opts.MaxSolutions < 1 {
		opts.MaxSolutions = 1
	}

	return &Solver{
		Grid:    g.Clone(),
		options: opts,
	}
}

// Solve attempts to solve the puzzle.
//
// It returns the solved grid on success. With MaxSolutions >= 2 it keeps
// searching past the first solution; if a second one exists the first is
// returned together with ErrMultipleSolutions. ErrNoSolution means the
// search space was exhausted, ErrTimeout that a budget ran out first.
func (s *Solver) Solve() (*grid.Grid, error) {
	if !s.Grid.IsValid() {
		return nil, ErrInvalidPuzzle
	}

	ctx, cancel := s.makeContext()
	defer cancel()

	s.nodes = 0
	s.aborted = false
	s.solutions = s.solutions[:0]
	start := time.Now()

	err := s.search(ctx, s.Grid.Clone())
	s.duration = time.Since(start)

	if err != nil && !errors.Is(err, errStopSearch) {
		return nil, err
	}
	if s.aborted {
		return nil, ErrTimeout
	}

	switch len(s.solutions) {
	case 0:
		return nil, ErrNoSolution
	case 1:
		return s.solutions[0], nil
	default:
		return s.solutions[0], ErrMultipleSolutions
	}
}

// Stats returns search statistics for the most recent Solve call.
func (s *Solver) Stats() Stats {
	return Stats{
		Nodes:     s.nodes,
		Solutions: len(s.solutions),
		Duration:  s.duration,
	}
}

// search explores g depth-first, recording solutions until the target
// count is reached. Each guess works on its own clone of the grid, so
// backtracking is a matter of dropping the child and moving on.
func (s *Solver) search(ctx context.Context, g *grid.Grid) error {
	s.nodes++
	if s.options.MaxNodes > 0 && s.nodes > s.options.MaxNodes {
		s.aborted = true
		return errStopSearch
	}
	select {
	case <-ctx.Done():
		s.aborted = true
		return errStopSearch
	default:
	}

	// Derive all forced values first; a contradiction means this branch
	// is a dead end, not a fatal error.
	if err := propagate(g); err != nil {
		return nil
	}

	if g.EmptyCount() == 0 {
		s.solutions = append(s.solutions, g.Clone())
		if len(s.solutions) >= s.options.MaxSolutions {
			return errStopSearch
		}
		return nil
	}

	pos, candidates := mrvCell(g)
	if len(candidates) == 0 {
		return nil
	}

	for _, val := range candidates {
		child := g.Clone()
		child.SetForce(pos, val)
		if err := s.search(ctx, child); err != nil {
			return err
		}
	}

	return nil
}

// mrvCell finds the open cell with the fewest candidates.
// Ties go to the lowest row-major position, candidates come back in
// ascending order, so the search is fully deterministic.
func mrvCell(g *grid.Grid) (int, []int) {
	mrvPos := -1
	mrvCount := 10
	var mrvCandidates []int

	for pos := 0; pos < grid.CellCount; pos++ {
		if g.Get(pos) != grid.Empty {
			continue
		}

		candidates := g.Candidates(pos)
		if len(candidates) < mrvCount {
			mrvCount = len(candidates)
			mrvPos = pos
			mrvCandidates = candidates

			if mrvCount <= 1 {
				break
			}
		}
	}

	return mrvPos, mrvCandidates
}
