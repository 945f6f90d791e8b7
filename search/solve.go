package search

import (
	"fmt"

	"github.com/katalvlaran/amphipod/burrow"
)

// New returns the Solver selected by the Strategy option.
func New(opts ...Option) (Solver, error) {
	cfg := buildOptions(opts)
	switch cfg.Strategy {
	case AStar:
		return &aStar{options: cfg}, nil
	case Memo:
		return &memo{options: cfg}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(cfg.Strategy))
	}
}

// Solve computes the minimum energy to sort start with the strategy chosen
// by WithStrategy (AStar by default).
func Solve(start burrow.State, opts ...Option) (Result, error) {
	s, err := New(opts...)
	if err != nil {
		return Result{}, err
	}

	return s.Solve(start)
}
