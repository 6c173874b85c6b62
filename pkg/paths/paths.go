// Package paths provides centralized path handling for pkgdeps.
// It follows the XDG Base Directory specification for user level files and
// resolves project relative paths against the working directory.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/pkgdeps/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for pkgdeps
	EnvConfigDir = "PKGDEPS_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for pkgdeps
	EnvStateDir = "PKGDEPS_STATE_DIR"
)

// Fixed file and directory names
const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "pkgdeps"

	// UserConfigFile is the user configuration file inside the config dir
	UserConfigFile = "config.toml"

	// LogFileName is the name of the log file inside the state dir
	LogFileName = "pkgdeps.log"

	// EnvFileName is the dotenv file read from the working directory
	EnvFileName = ".env"
)

// ProjectConfigFiles are the project configuration names, in lookup order
var ProjectConfigFiles = []string{".pkgdeps.toml", "pkgdeps.toml"}

// Paths resolves every location pkgdeps reads from or writes to
type Paths struct {
	workingDir string
	configDir  string
	stateDir   string
}

// New creates a Paths instance rooted at workingDir. An empty workingDir
// selects the current directory.
func New(workingDir string) (*Paths, error) {
	if workingDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to get current directory")
		}
		workingDir = cwd
	}

	abs, err := filepath.Abs(ExpandHome(workingDir))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to resolve working directory %s", workingDir)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound, "working directory %s does not exist", abs).
			WithDetail("path", abs)
	}
	if !info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "working directory %s is not a directory", abs).
			WithDetail("path", abs)
	}

	return &Paths{
		workingDir: abs,
		configDir:  DefaultConfigDir(),
		stateDir:   DefaultStateDir(),
	}, nil
}

// WorkingDir returns the absolute project directory
func (p *Paths) WorkingDir() string {
	return p.workingDir
}

// ConfigDir returns the user configuration directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// StateDir returns the user state directory
func (p *Paths) StateDir() string {
	return p.stateDir
}

// UserConfigPath returns the path of the user configuration file
func (p *Paths) UserConfigPath() string {
	return filepath.Join(p.configDir, UserConfigFile)
}

// ProjectConfigPaths returns the candidate project configuration files
func (p *Paths) ProjectConfigPaths() []string {
	out := make([]string, len(ProjectConfigFiles))
	for i, name := range ProjectConfigFiles {
		out[i] = filepath.Join(p.workingDir, name)
	}
	return out
}

// EnvFilePath returns the dotenv file of the project
func (p *Paths) EnvFilePath() string {
	return filepath.Join(p.workingDir, EnvFileName)
}

// Resolve makes path absolute, relative to the working directory
func (p *Paths) Resolve(path string) string {
	path = ExpandHome(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.workingDir, path)
}

// Rel returns path relative to the working directory when it lies inside it
func (p *Paths) Rel(path string) string {
	rel, err := filepath.Rel(p.workingDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// DefaultConfigDir returns the configuration directory honoring EnvConfigDir
func DefaultConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// DefaultStateDir returns the state directory honoring EnvStateDir
func DefaultStateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return ExpandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the log file location
func LogFilePath() string {
	return filepath.Join(DefaultStateDir(), LogFileName)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
