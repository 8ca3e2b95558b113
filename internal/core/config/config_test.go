package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)

	names := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		names[i] = fe.Field
	}
	return names
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.Server.URL)
	assert.Equal(t, 10*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "2006-01-02 15:04:05", cfg.Display.TimeFormat)
	assert.Equal(t, 2, cfg.Display.IndentWidth)
	assert.Equal(t, "tokyo-night", cfg.Display.Theme)
	assert.Equal(t, DefaultKeybindings(), cfg.Keybindings)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, IntentDelete, cfg.Keybindings["d"].Intent)
}

func TestLoad_OverridesAndMerge(t *testing.T) {
	path := writeConfig(t, `
server:
  url: https://comments.example.com/api
  timeout: 3s
display:
  indent_width: 4
  theme: gruvbox
keybindings:
  x:
    intent: delete
    help: remove
    confirm: "Really?"
  r:
    intent: reload
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://comments.example.com/api", cfg.Server.URL)
	assert.Equal(t, 3*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 4, cfg.Display.IndentWidth)
	assert.Equal(t, "gruvbox", cfg.Display.Theme)
	assert.Equal(t, "2006-01-02 15:04:05", cfg.Display.TimeFormat, "unset fields keep defaults")

	assert.Equal(t, Keybinding{Intent: IntentDelete, Help: "remove", Confirm: "Really?"}, cfg.Keybindings["x"])
	assert.Equal(t, IntentReload, cfg.Keybindings["r"].Intent, "user binding overrides default")
	assert.Equal(t, IntentDelete, cfg.Keybindings["d"].Intent, "defaults survive")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "server: [nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `
server:
  url: ftp://example.com
  timeout: -1s
display:
  indent_width: 12
  theme: neon
keybindings:
  z:
    help: nothing
  q:
    intent: explode
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")

	names := fieldNames(t, err)
	assert.ElementsMatch(t, []string{
		"server.url",
		"display.theme",
		"server.timeout",
		"display.indent_width",
		`keybindings["z"]`,
		`keybindings["q"]`,
	}, names)
}

func TestValidate_ConfirmOnlyForDelete(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings = map[string]Keybinding{
		"R": {Intent: IntentReload, Confirm: "sure?"},
	}

	assert.Equal(t, []string{`keybindings["R"]`}, fieldNames(t, cfg.Validate()))
}

func TestValidate_ServerURL(t *testing.T) {
	tests := []struct {
		url  string
		ok   bool
		name string
	}{
		{name: "http", url: "http://localhost:8080", ok: true},
		{name: "https with path", url: "https://example.com/base", ok: true},
		{name: "no scheme", url: "localhost:8080"},
		{name: "no host", url: "http://"},
		{name: "garbage", url: "://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Server.URL = tt.url
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, []string{"server.url"}, fieldNames(t, err))
		})
	}
}

func TestValidateDeep_ConfigIsDirectory(t *testing.T) {
	cfg := DefaultConfig()
	dir := t.TempDir()

	assert.Equal(t, []string{"config_file"}, fieldNames(t, cfg.ValidateDeep(dir)))
	assert.NoError(t, cfg.ValidateDeep(filepath.Join(dir, "missing.yaml")))
	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keybindings = DefaultKeybindings()
	assert.Empty(t, cfg.Warnings())

	cfg.Server.URL = "http://comments.example.com"
	cfg.Keybindings["x"] = Keybinding{Intent: IntentReply}

	warnings := cfg.Warnings()
	require.Len(t, warnings, 2)

	categories := []string{warnings[0].Category, warnings[1].Category}
	assert.ElementsMatch(t, []string{"Server", "Keybindings"}, categories)
}
