package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/amphipod/burrow"
	"github.com/katalvlaran/amphipod/internal/config"
	"github.com/katalvlaran/amphipod/internal/logging"
	"github.com/katalvlaran/amphipod/search"
)

// solveOptions holds the flags of the solve command.
type solveOptions struct {
	configPath     string
	inputPath      string
	strategy       string
	extended       bool
	branchAndBound bool
	noPrune        bool
	timeLimit      time.Duration
	progressEvery  int
	logLevel       string
	logFormat      string
}

func (a *App) newSolveCmd() *cobra.Command {
	opts := &solveOptions{}

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the minimum energy needed to organize a burrow",
		Long: `Solve reads a burrow diagram from the given file, or from standard input
when no file is given, and prints the minimum total energy as a single integer.

Examples:
  # Solve the folded diagram
  amphipod solve input.txt

  # Unfold the diagram to four rows per room first
  amphipod solve --extended input.txt

  # Memoized recursion with branch-and-bound, reading stdin
  cat input.txt | amphipod solve --strategy memo --branch-and-bound`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.inputPath = args[0]
			}
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return a.solve(cmd.Context(), cfg, opts)
		},
	}

	defaults := config.Default()
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", defaults.Strategy, "Search strategy (astar or memo)")
	cmd.Flags().BoolVarP(&opts.extended, "extended", "x", false, "Insert the two hidden rows before solving")
	cmd.Flags().BoolVar(&opts.branchAndBound, "branch-and-bound", false, "Prune branches that cannot beat the best known cost")
	cmd.Flags().BoolVar(&opts.noPrune, "no-prune", false, "Keep moves that can never lead to a goal")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "Abort the search after this long (0 = no limit)")
	cmd.Flags().IntVar(&opts.progressEvery, "progress-every", search.DefaultOptions().ProgressEvery, "Log progress every N expanded states")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", defaults.Log.Level, "Log level (trace, debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", defaults.Log.Format, "Log format (console or json)")

	return cmd
}

// resolve loads the configuration file, if any, and applies explicitly set
// flags on top of it.
func (o *solveOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.LoadFile(o.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("strategy") {
		cfg.Strategy = o.strategy
	}
	if flags.Changed("extended") {
		cfg.Extended = o.extended
	}
	if flags.Changed("branch-and-bound") {
		cfg.BranchAndBound = o.branchAndBound
	}
	if flags.Changed("no-prune") {
		cfg.DeadEndPruning = !o.noPrune
	}
	if flags.Changed("time-limit") {
		cfg.TimeLimit = o.timeLimit
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = o.logFormat
	}
	if o.progressEvery <= 0 {
		return config.Config{}, fmt.Errorf("%w: progress-every must be > 0, got %d", config.ErrInvalid, o.progressEvery)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// solve runs one search and prints its cost.
func (a *App) solve(ctx context.Context, cfg config.Config, opts *solveOptions) error {
	logger := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: a.stderr,
	})

	start, err := a.readBurrow(opts.inputPath, cfg.Extended)
	if err != nil {
		return err
	}

	searchOpts, err := cfg.SearchOptions()
	if err != nil {
		return err
	}
	strategy, _ := search.ParseStrategy(cfg.Strategy)
	runID := uuid.New().String()
	searchOpts = append(searchOpts, search.WithContext(ctx), search.WithProgress(func(p search.Progress) {
		logging.With(logger.Debug(), logging.RunID(runID), logging.Progress(p)).Msg("search progress")
	}, opts.progressEvery))

	logging.With(logger.Info(),
		logging.RunID(runID),
		logging.Strategy(strategy),
		logging.Agents(start.Len(), start.Layout().Depth()),
	).Bool("branch_and_bound", cfg.BranchAndBound).
		Bool("dead_end_pruning", cfg.DeadEndPruning).
		Msg("solve started")

	res, err := search.Solve(start, searchOpts...)
	if err != nil {
		logError(logger, runID, err)
		return fmt.Errorf("solve failed: %w", err)
	}

	logging.With(logger.Info(),
		logging.RunID(runID),
		logging.Strategy(res.Strategy),
		logging.Result(res),
		logging.Duration(res.Elapsed),
	).Msg("solve finished")

	_, err = fmt.Fprintln(a.stdout, res.Cost)
	return err
}

// readBurrow reads the diagram from path, or from stdin when path is empty.
func (a *App) readBurrow(path string, extended bool) (burrow.State, error) {
	var in io.Reader = a.stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return burrow.State{}, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	lines, err := burrow.ReadLines(in)
	if err != nil {
		return burrow.State{}, fmt.Errorf("failed to read input: %w", err)
	}
	if extended {
		if lines, err = burrow.Extend(lines); err != nil {
			return burrow.State{}, fmt.Errorf("failed to extend burrow: %w", err)
		}
	}

	start, err := burrow.Parse(lines)
	if err != nil {
		return burrow.State{}, fmt.Errorf("failed to parse burrow: %w", err)
	}

	return start, nil
}

func logError(logger *bolt.Logger, runID string, err error) {
	logging.With(logger.Error(), logging.RunID(runID)).Err(err).Msg("solve failed")
}
