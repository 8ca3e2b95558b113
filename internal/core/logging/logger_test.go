package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestComponent(t *testing.T) {
	prev := log.Logger
	t.Cleanup(func() { log.Logger = prev })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	l := Component("tui")
	l.Info().Msg("hello")

	entry := decode(t, &buf)
	assert.Equal(t, "tui", entry[ComponentKey])
	assert.Equal(t, "hello", entry["message"])
}

func TestSub(t *testing.T) {
	var buf bytes.Buffer
	parent := zerolog.New(&buf).With().Str("app", "threads").Logger()

	l := Sub(parent, "client")
	l.Warn().Msg("slow")

	entry := decode(t, &buf)
	assert.Equal(t, "client", entry[ComponentKey])
	assert.Equal(t, "threads", entry["app"], "parent fields kept")
	assert.Equal(t, "warn", entry["level"])
}
