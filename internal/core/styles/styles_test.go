package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{"catppuccin", "gruvbox", "nord", "tokyo-night"}, ThemeNames())
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p, CurrentPalette)
}

func TestGlamourStyle_UsesPalette(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.Document.Color)
	assert.Equal(t, "#c0caf5", *cfg.Document.Color)
	require.NotNil(t, cfg.H2.Color)
	assert.Equal(t, "#7aa2f7", *cfg.H2.Color)
	assert.Nil(t, cfg.H1.BackgroundColor)
	require.NotNil(t, cfg.Strong.Color)
	assert.Equal(t, "#e0af68", *cfg.Strong.Color)
}

func TestGlamourStyle_FollowsTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("nord")
	require.True(t, ok)
	SetTheme(p)

	cfg := GlamourStyle()
	require.NotNil(t, cfg.Link.Color)
	assert.Equal(t, "#81a1c1", *cfg.Link.Color)
}
