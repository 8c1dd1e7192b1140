package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DimitriosCha/sudoku-solver/internal/grid"
	"github.com/DimitriosCha/sudoku-solver/internal/solver"
)

var checkTimeout time.Duration

func init() {
	checkCmd := &cobra.Command{
		Use:   "check <puzzle>",
		Short: "Classify a puzzle as unique, ambiguous, or unsolvable",
		Long: `Check how many solutions a puzzle has without printing them.

The puzzle is classified as one of:
  unique      exactly one solution
  ambiguous   more than one solution
  unsolvable  no solution`,
		Args: cobra.ExactArgs(1),
		RunE: runCheck,
	}

	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 0, "Wall-clock budget (0 = none)")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	puzzle, err := grid.Parse(args[0])
	if err != nil {
		return err
	}

	s := solver.New(puzzle, &solver.Options{
		MaxSolutions: 2,
		Timeout:      checkTimeout,
	})
	_, err = s.Solve()

	stats := s.Stats()
	log.Debug("check finished",
		"clues", puzzle.ClueCount(),
		"nodes", stats.Nodes,
		"duration", stats.Duration)

	switch {
	case err == nil:
		fmt.Fprintln(cmd.OutOrStdout(), "unique")
	case errors.Is(err, solver.ErrMultipleSolutions):
		fmt.Fprintln(cmd.OutOrStdout(), "ambiguous")
	case errors.Is(err, solver.ErrNoSolution):
		fmt.Fprintln(cmd.OutOrStdout(), "unsolvable")
	default:
		return err
	}
	return nil
}
