package logutils

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "threads.log")

	logger, closer, err := New("info", file, io.Discard)
	require.NoError(t, err)

	logger.Info().Msg("first")
	logger.Debug().Msg("filtered")
	closer()

	logger, closer, err = New("info", file, io.Discard)
	require.NoError(t, err)
	logger.Info().Msg("second")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"first"`)
	assert.Contains(t, string(data), `"message":"second"`)
	assert.NotContains(t, string(data), "filtered")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("loud", "", io.Discard)
	assert.Error(t, err)
}

func TestNew_Level(t *testing.T) {
	logger, closer, err := New("warn", "", io.Discard)
	require.NoError(t, err)
	defer closer()
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestNew_Fallback(t *testing.T) {
	var out bytes.Buffer
	logger, closer, err := New("info", "", &out)
	require.NoError(t, err)
	defer closer()

	logger.Info().Msg("to fallback")
	assert.Contains(t, out.String(), `"message":"to fallback"`)
}
