// Package logging builds the bolt logger used for solver diagnostics.
//
// Diagnostics are informational only: the answer itself is always written
// to standard output by the CLI, never through the logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/katalvlaran/amphipod/search"
)

// Config configures the logger.
type Config struct {
	// Level is the minimum log level (trace, debug, info, warn, error).
	Level string

	// Format is the output format (json or console).
	Format string

	// Output is the destination; defaults to os.Stderr.
	Output io.Writer
}

// DefaultConfig logs info and above to stderr in console format.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
		Output: os.Stderr,
	}
}

// ParseLevel converts a level name to bolt.Level. Unknown names map to INFO.
func ParseLevel(s string) bolt.Level {
	switch strings.ToLower(s) {
	case "trace":
		return bolt.TRACE
	case "debug":
		return bolt.DEBUG
	case "info":
		return bolt.INFO
	case "warn":
		return bolt.WARN
	case "error":
		return bolt.ERROR
	default:
		return bolt.INFO
	}
}

// New returns a logger for cfg.
func New(cfg Config) *bolt.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var handler bolt.Handler
	if cfg.Format == "json" {
		handler = bolt.NewJSONHandler(out)
	} else {
		handler = bolt.NewConsoleHandler(out)
	}

	return bolt.New(handler).SetLevel(ParseLevel(cfg.Level))
}

// Field is a function that applies structured data to a log event.
type Field func(*bolt.Event) *bolt.Event

// With applies fields to e in order.
func With(e *bolt.Event, fields ...Field) *bolt.Event {
	for _, f := range fields {
		e = f(e)
	}

	return e
}

// RunID adds the solve run identifier.
func RunID(id string) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("run_id", id)
	}
}

// Strategy adds the search strategy name.
func Strategy(s search.Strategy) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Str("strategy", s.String())
	}
}

// Agents adds the agent count and room depth of the puzzle.
func Agents(n, depth int) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("agents", n).Int("depth", depth)
	}
}

// Progress adds a search progress snapshot.
func Progress(p search.Progress) Field {
	return func(e *bolt.Event) *bolt.Event {
		e = e.Int("expanded", p.Expanded).Int("frontier", p.Frontier).Int("cached", p.Cached)
		if p.Found {
			e = e.Int("best", p.Best)
		}
		return e
	}
}

// Result adds the final search statistics.
func Result(r search.Result) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int("cost", r.Cost).
			Int("expanded", r.Expanded).
			Int("generated", r.Generated).
			Int("cached", r.Cached)
	}
}

// Duration adds a duration field in milliseconds.
func Duration(d time.Duration) Field {
	return func(e *bolt.Event) *bolt.Event {
		return e.Int64("duration_ms", d.Milliseconds())
	}
}
