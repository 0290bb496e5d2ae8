package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, used, err := Load(New(""))
	require.NoError(t, err)

	assert.Empty(t, used)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "media", cfg.MediaDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 850, cfg.UI.SidebarBreakpoint)
	assert.Equal(t, "#d3cf00", cfg.UI.HighlightColor)
	assert.Equal(t, 500*time.Millisecond, cfg.UI.HighlightDuration)
	assert.False(t, cfg.Watch)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `port: 9090
site_title: "Sounds and Code"
templates_dir: ./web/templates
watch: true
log:
  level: debug
  format: console
ui:
  highlight_duration: 1s
`)
	cfg, used, err := Load(New(path))
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "Sounds and Code", cfg.SiteTitle)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, time.Second, cfg.UI.HighlightDuration)
	assert.Equal(t, 850, cfg.UI.SidebarBreakpoint)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, _, err := Load(New(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Error(t, err)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("PORTFOLIO_SITE_TITLE", "From Env")
	t.Setenv("PORTFOLIO_UI_SIDEBAR_BREAKPOINT", "1024")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "warn")

	cfg, _, err := Load(New(""))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "From Env", cfg.SiteTitle)
	assert.Equal(t, 1024, cfg.UI.SidebarBreakpoint)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_PrefixedPortWins(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("PORTFOLIO_PORT", "4000")

	cfg, _, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"port out of range": "port: 70000\n",
		"bad log level":     "log:\n  level: loud\n",
		"bad colour":        "ui:\n  highlight_color: yellow\n",
		"watch without dir": "watch: true\n",
		"bad gin mode":      "gin_mode: fast\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := Load(New(writeConfig(t, content)))
			assert.Error(t, err)
		})
	}
}
