package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nathanieltooley/gokemon-calc/config"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)

	logger.Info().Str("move", "tackle").Msg("composed")
	logger.Debug().Msg("hidden")

	assert.Contains(t, buf.String(), `"move":"tackle"`)
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "info", Format: "xml"}, nil)
	assert.Error(t, err)
}

func TestLogrVerbosity(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(config.LoggingConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	bridged := Logr(&logger).WithName("golurk")
	bridged.V(1).Info("summary", "branches", 2)
	bridged.V(2).Info("detail")

	assert.Contains(t, buf.String(), "summary")
	assert.NotContains(t, buf.String(), "detail")
}
