// Package styles defines the visual styling for pkgdeps' terminal output.
//
// Styles use semantic names and adaptive colors that adjust to light and dark
// terminal themes. Style names double as the markup tags accepted in output
// lines:
//
//	acme/app 1.0.0 <info>require</info> ^2.0
//
// The default definitions are embedded from styles.yaml; a user supplied file
// with the same layout replaces them.
package styles

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Default returns the embedded style configuration
func Default() *Config {
	cfg, err := Parse(defaultStyles)
	if err != nil {
		panic(fmt.Sprintf("embedded styles.yaml is invalid: %v", err))
	}
	return cfg
}

// Load reads a style configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a style configuration. Styles referencing an undefined
// color are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse styles: %w", err)
	}

	for name, def := range cfg.Styles {
		for _, ref := range []string{def.Foreground, def.Background} {
			if ref == "" {
				continue
			}
			if _, ok := cfg.Colors[ref]; !ok {
				return nil, fmt.Errorf("style %q references undefined color %q", name, ref)
			}
		}
	}
	return &cfg, nil
}

// Names returns the defined style names, sorted
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Styles))
	for name := range c.Styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build creates the style registry bound to renderer r
func (c *Config) Build(r *lipgloss.Renderer) map[string]lipgloss.Style {
	registry := make(map[string]lipgloss.Style, len(c.Styles))
	for name, def := range c.Styles {
		registry[name] = c.buildStyle(r, def)
	}
	return registry
}

func (c *Config) buildStyle(r *lipgloss.Renderer, def StyleDef) lipgloss.Style {
	style := r.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if color, ok := c.Colors[def.Foreground]; ok {
		style = style.Foreground(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
	}
	if color, ok := c.Colors[def.Background]; ok {
		style = style.Background(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
	}

	return style
}
