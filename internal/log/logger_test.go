package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/texbody/internal/config"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger(config.NewAppConfigWithOptions(config.WithLogFormat(config.LogFormatJSON)))
	require.NotNil(t, l)
	assert.NotNil(t, l.Slog())
}

func TestNewLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatJSON, "DEBUG")
	l.With("step", 3).Debug("table relocated", "region", "longtable[2:20]")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "table relocated", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, float64(3), rec["step"])
	assert.Equal(t, "longtable[2:20]", rec["region"])
}

func TestNewLoggerWithWriter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter(&buf, config.LogFormatPretty, "warn")
	l.Info("hidden")
	l.Debug("hidden")
	assert.Empty(t, buf.String())

	l.Warn("tabularrows skipped", "chunk", "x y")
	out := buf.String()
	assert.Contains(t, out, "WRN")
	assert.Contains(t, out, "tabularrows skipped")
	assert.Contains(t, out, `"x y"`)

	buf.Reset()
	l.Error("render aborted")
	assert.Contains(t, buf.String(), "ERR")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLevel("Error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestTerminalHandler_Groups(t *testing.T) {
	var buf bytes.Buffer
	h := newTerminalHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(h.WithGroup("pass").WithAttrs([]slog.Attr{slog.String("name", "figure")}))
	logger.Debug("done", slog.Group("region", slog.Int("begin", 2)))

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "pass.name=")
	assert.Contains(t, out, "pass.region.begin=")
	assert.Same(t, h, h.WithGroup(""))
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing") })
}
