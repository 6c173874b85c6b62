package config

import (
	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/arthur-debert/pkgdeps/pkg/output"
)

// Config is the effective pkgdeps configuration
type Config struct {
	Repositories RepositoriesConfig `koanf:"repositories" toml:"repositories"`
	Depends      DependsConfig      `koanf:"depends" toml:"depends"`
	Output       OutputConfig       `koanf:"output" toml:"output"`
}

// RepositoriesConfig lists the local repositories of a project
type RepositoriesConfig struct {
	Paths []string `koanf:"paths" toml:"paths"`
}

// DependsConfig holds defaults for the depends command
type DependsConfig struct {
	LinkTypes []string `koanf:"link_types" toml:"link_types"`
}

// OutputConfig controls line rendering
type OutputConfig struct {
	Color  string `koanf:"color" toml:"color"`
	Styles string `koanf:"styles" toml:"styles"`
}

// Validate checks values that cannot be checked by decoding alone
func (c *Config) Validate() error {
	if _, err := output.ParseColorMode(c.Output.Color); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid output.color").
			WithDetail("value", c.Output.Color)
	}
	return nil
}

// ColorMode returns the parsed output.color value
func (c *Config) ColorMode() output.ColorMode {
	mode, err := output.ParseColorMode(c.Output.Color)
	if err != nil {
		return output.ColorAuto
	}
	return mode
}
