package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DimitriosCha/sudoku-solver/internal/grid"
	"github.com/DimitriosCha/sudoku-solver/internal/solver"
)

var (
	solveTimeout  time.Duration
	solveMaxNodes int
	solveUnique   bool
	solvePretty   bool
	solveWorkers  int
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [puzzle ...]",
		Short: "Solve one or more Sudoku puzzles",
		Long: `Solve Sudoku puzzles given as 81-character strings.
With no arguments, puzzles are read from stdin, one per line.

Examples:
  sudoku solve 53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79
  sudoku solve --unique --pretty <puzzle>
  sudoku solve --workers 4 --timeout 10s < puzzles.txt`,
		RunE: runSolve,
	}

	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Wall-clock budget per puzzle (0 = none)")
	solveCmd.Flags().IntVar(&solveMaxNodes, "max-nodes", 0, "Search-node budget per puzzle (0 = none)")
	solveCmd.Flags().BoolVarP(&solveUnique, "unique", "u", false, "Require a unique solution; ambiguous puzzles fail")
	solveCmd.Flags().BoolVarP(&solvePretty, "pretty", "p", false, "Render solutions as grids with clues highlighted")
	solveCmd.Flags().IntVarP(&solveWorkers, "workers", "w", 1, "Number of puzzles to solve in parallel")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	puzzles := args
	if len(puzzles) == 0 {
		var err error
		puzzles, err = readPuzzles(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading puzzles: %w", err)
		}
	}
	if len(puzzles) == 0 {
		return errors.New("no puzzles given")
	}

	maxSolutions := 1
	if solveUnique {
		maxSolutions = 2
	}

	cfg := solveConfig{
		options: &solver.Options{
			MaxSolutions: maxSolutions,
			Timeout:      solveTimeout,
			MaxNodes:     solveMaxNodes,
		},
		pretty:  solvePretty,
		workers: solveWorkers,
	}
	return solvePuzzles(cmd.OutOrStdout(), puzzles, cfg)
}

type solveConfig struct {
	options *solver.Options
	pretty  bool
	workers int
}

type outcome struct {
	puzzle   *grid.Grid
	solution *grid.Grid
	stats    solver.Stats
	err      error
}

// solvePuzzles solves each puzzle independently, up to cfg.workers at a
// time, and prints results in input order.
func solvePuzzles(w io.Writer, puzzles []string, cfg solveConfig) error {
	outcomes := make([]outcome, len(puzzles))

	workers := max(cfg.workers, 1)
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, input := range puzzles {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, input string) {
			defer func() { <-sem; wg.Done() }()
			outcomes[i] = solveOne(input, cfg.options)
		}(i, input)
	}
	wg.Wait()

	failed := 0
	for i, out := range outcomes {
		if out.err != nil {
			failed++
			log.Error("puzzle failed", "puzzle", i+1, "error", out.err)
			continue
		}

		log.Debug("puzzle solved",
			"puzzle", i+1,
			"clues", out.puzzle.ClueCount(),
			"nodes", out.stats.Nodes,
			"duration", out.stats.Duration)

		if cfg.pretty {
			fmt.Fprintln(w, renderGrid(out.puzzle, out.solution))
		} else {
			fmt.Fprintln(w, out.solution.String())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d puzzles failed", failed, len(puzzles))
	}
	return nil
}

// solveOne parses and solves a single puzzle string.
func solveOne(input string, options *solver.Options) outcome {
	puzzle, err := grid.Parse(input)
	if err != nil {
		return outcome{err: err}
	}

	s := solver.New(puzzle, options)
	solution, err := s.Solve()
	return outcome{
		puzzle:   puzzle,
		solution: solution,
		stats:    s.Stats(),
		err:      err,
	}
}

// readPuzzles reads one puzzle per line, skipping blank lines and
// '#' comments.
func readPuzzles(r io.Reader) ([]string, error) {
	var puzzles []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		puzzles = append(puzzles, line)
	}

	return puzzles, scanner.Err()
}
