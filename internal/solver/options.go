package solver

import (
	"context"
	"time"
)

// Options configures solver behavior.
type Options struct {
	// MaxSolutions stops the search after this many solutions are found.
	// 1 returns the first solution; 2 additionally detects ambiguity.
	MaxSolutions int

	// Timeout limits wall-clock search time. Zero means no limit.
	Timeout time.Duration

	// MaxNodes limits the number of search nodes visited. Zero means no
	// limit. Exceeding it aborts the search with ErrTimeout, same as the
	// wall-clock budget.
	MaxNodes int
}

// DefaultOptions returns standard solver options: first solution,
// no budgets.
func DefaultOptions() *Options {
	return &Options{MaxSolutions: 1}
}

// makeContext derives the context governing a single search.
func (s *Solver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.options.Timeout)
	}
	return context.WithCancel(context.Background())
}
