// Package config handles configuration management for pkgdeps.
// It layers, lowest precedence first: embedded defaults, the user config
// file, the project config file, the project .env file, PKGDEPS_*
// environment variables and command-line overrides.
package config
