package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oesnpg/dw-migrate/internal/logging"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" DEBUG ": slog.LevelDebug,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, logging.ParseLevel(in), "level %q", in)
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(&buf, "warn")

	log.Info("hidden")
	log.Warn("migration saved", "path", "output/postgresql/x.sql")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="migration saved"`)
	assert.Contains(t, out, "path=output/postgresql/x.sql")
}
