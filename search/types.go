package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/amphipod/burrow"
)

// Sentinel errors returned by the solvers.
var (
	// ErrEmptyState indicates a start state without agents.
	ErrEmptyState = errors.New("search: start state has no agents")

	// ErrNoSolution indicates that no goal state is reachable from the start.
	ErrNoSolution = errors.New("search: no solution")

	// ErrUnknownStrategy indicates an unsupported Strategy value.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrTimeLimit indicates the soft time budget elapsed mid-search.
	ErrTimeLimit = errors.New("search: time limit exceeded")

	// ErrBadTimeLimit indicates a negative time budget.
	ErrBadTimeLimit = errors.New("search: time limit must be non-negative")
)

// Strategy selects the exploration algorithm.
type Strategy int

const (
	// AStar is the best-first search with a visited set.
	AStar Strategy = iota

	// Memo is the memoized depth-first recursion.
	Memo
)

func (s Strategy) String() string {
	switch s {
	case AStar:
		return "astar"
	case Memo:
		return "memo"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "astar" or "memo" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "astar", "a*", "":
		return AStar, nil
	case "memo", "bnb", "branch-and-bound":
		return Memo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Solver computes the minimum energy to sort a burrow.
type Solver interface {
	Solve(start burrow.State) (Result, error)
}

// Result holds the outcome of a search.
type Result struct {
	Strategy  Strategy      // strategy that produced the result
	Cost      int           // minimum total energy
	Expanded  int           // states expanded
	Generated int           // successor states produced
	Cached    int           // entries in the visited set or memo table
	Elapsed   time.Duration // wall-clock time of the search
}

// Progress is a snapshot handed to the WithProgress callback.
type Progress struct {
	Strategy Strategy
	Expanded int
	Frontier int  // open entries (AStar) or recursion depth (Memo)
	Cached   int  // visited set or memo table size
	Best     int  // best complete cost so far; valid when Found
	Found    bool // whether any goal has been reached
}

// Options configures a solver.
//
// Strategy       – algorithm used by Solve. Default AStar.
// DeadEndPruning – skip moves rejected by moves.Useful. Default true.
// BranchAndBound – incumbent pruning for Memo. Default false.
// TimeLimit      – soft wall-clock budget; 0 disables it.
// Progress       – optional diagnostic callback.
// ProgressEvery  – expansions between Progress calls. Default 50000.
// Context        – cancels the search; nil means never.
type Options struct {
	Strategy       Strategy
	DeadEndPruning bool
	BranchAndBound bool
	TimeLimit      time.Duration
	Progress       func(Progress)
	ProgressEvery  int
	Context        context.Context
}

// Option represents a functional option for configuring a solver.
type Option func(*Options)

// DefaultOptions returns the defaults listed on Options.
func DefaultOptions() Options {
	return Options{
		Strategy:       AStar,
		DeadEndPruning: true,
		ProgressEvery:  50000,
	}
}

// WithStrategy selects the algorithm used by Solve.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithDeadEndPruning enables or disables the moves.Useful filter.
func WithDeadEndPruning(enabled bool) Option {
	return func(o *Options) {
		o.DeadEndPruning = enabled
	}
}

// WithBranchAndBound enables incumbent pruning in the Memo strategy.
// It has no effect on AStar, which always prunes against its best goal.
func WithBranchAndBound() Option {
	return func(o *Options) {
		o.BranchAndBound = true
	}
}

// WithTimeLimit sets a soft wall-clock budget. Zero disables it.
// Panics with ErrBadTimeLimit on a negative duration.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			panic(ErrBadTimeLimit.Error())
		}
		o.TimeLimit = d
	}
}

// WithProgress installs a diagnostic callback invoked every `every`
// expansions and whenever a better goal is found. every ≤ 0 keeps the default.
func WithProgress(fn func(Progress), every int) Option {
	return func(o *Options) {
		o.Progress = fn
		if every > 0 {
			o.ProgressEvery = every
		}
	}
}

// WithContext aborts the search with ctx.Err() once ctx is done. The context
// is polled at the same sparse interval as the time limit.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Context = ctx
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// clock performs sparse deadline and cancellation checks.
type clock struct {
	ctx      context.Context
	timed    bool
	deadline time.Time
	steps    int
}

func newClock(began time.Time, o Options) clock {
	return clock{
		ctx:      o.Context,
		timed:    o.TimeLimit > 0,
		deadline: began.Add(o.TimeLimit),
	}
}

// check returns the context error or ErrTimeLimit, looking at the context
// and the wall clock on the first call and once every 4096 calls after it.
func (c *clock) check() error {
	step := c.steps
	c.steps++
	if step&4095 != 0 {
		return nil
	}
	if c.ctx != nil {
		if err := c.ctx.Err(); err != nil {
			return err
		}
	}
	if c.timed && time.Now().After(c.deadline) {
		return ErrTimeLimit
	}

	return nil
}
