package logging

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/felixgeelhaar/bolt/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/search"
)

// jsonLogger returns a trace-level JSON logger writing to a buffer.
func jsonLogger() (*bolt.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return New(Config{Level: "trace", Format: "json", Output: buf}), buf
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, os.Stderr, cfg.Output)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want bolt.Level
	}{
		{"trace", bolt.TRACE},
		{"debug", bolt.DEBUG},
		{"INFO", bolt.INFO},
		{"warn", bolt.WARN},
		{"error", bolt.ERROR},
		{"loud", bolt.INFO},
		{"", bolt.INFO},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestFields(t *testing.T) {
	logger, buf := jsonLogger()
	With(logger.Info(),
		RunID("run-1"),
		Strategy(search.Memo),
		Agents(16, 4),
		Duration(250*time.Millisecond),
	).Msg("start")

	out := buf.String()
	assert.Contains(t, out, `"run_id":"run-1"`)
	assert.Contains(t, out, `"strategy":"memo"`)
	assert.Contains(t, out, `"agents":16`)
	assert.Contains(t, out, `"depth":4`)
	assert.Contains(t, out, `"duration_ms":250`)
}

func TestProgressField(t *testing.T) {
	logger, buf := jsonLogger()
	With(logger.Debug(), Progress(search.Progress{Expanded: 7, Frontier: 3})).Msg("progress")
	assert.Contains(t, buf.String(), `"expanded":7`)
	assert.NotContains(t, buf.String(), `"best"`)

	buf.Reset()
	With(logger.Debug(), Progress(search.Progress{Expanded: 9, Best: 12521, Found: true})).Msg("progress")
	assert.Contains(t, buf.String(), `"best":12521`)
}

func TestResultField(t *testing.T) {
	logger, buf := jsonLogger()
	With(logger.Info(), Result(search.Result{Cost: 44169, Expanded: 10, Generated: 20, Cached: 30})).Msg("done")

	out := buf.String()
	assert.Contains(t, out, `"cost":44169`)
	assert.Contains(t, out, `"generated":20`)
	assert.Contains(t, out, `"cached":30`)
}

func TestLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Level: "warn", Format: "json", Output: buf})

	logger.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
