package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numex/internal/logging"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "debug", Format: "json", Writer: &buf})
	require.NoError(t, err)

	clog := logging.Component(log, "series")
	clog.Debug().Int("n", 7).Msg("converged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "numex", entry["service"])
	assert.Equal(t, "series", entry["component"])
	assert.Equal(t, float64(7), entry["n"])
	assert.Equal(t, "converged", entry["message"])
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "warn", Format: "json", Writer: &buf})
	require.NoError(t, err)

	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Format: "console", Writer: &buf})
	require.NoError(t, err)

	log.Info().Str("mode", "stable").Msg("done")
	out := buf.String()
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "mode=stable")
	assert.NotContains(t, out, "\x1b[", "non-terminal writers get no color codes")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := logging.New(logging.Options{Level: "shouty"})
	require.Error(t, err)
}
