package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{"comment", "error", "heading", "info", "muted"}, cfg.Names())
	assert.Equal(t, "info", cfg.Styles["info"].Foreground)
	assert.True(t, cfg.Styles["error"].Bold)
}

func TestParse_RejectsUndefinedColor(t *testing.T) {
	_, err := Parse([]byte(`
colors:
  info: {light: "#000000", dark: "#FFFFFF"}
styles:
  info:
    foreground: missing
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `undefined color "missing"`)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("colors: [unclosed"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  accent: {light: "#0000FF", dark: "#00FFFF"}
styles:
  info:
    foreground: accent
    underline: true
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"info"}, cfg.Names())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	r := lipgloss.NewRenderer(os.Stdout)
	r.SetColorProfile(termenv.ANSI256)

	registry := Default().Build(r)
	require.Contains(t, registry, "info")

	rendered := registry["info"].Render("require")
	assert.Contains(t, rendered, "require")
	assert.NotEqual(t, "require", rendered, "colored profile should add escape codes")
}
