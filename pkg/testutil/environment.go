package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/pkgdeps/pkg/paths"
	"github.com/stretchr/testify/require"
)

// ComposerInstalledPath is where Composer records installed packages
const ComposerInstalledPath = "vendor/composer/installed.json"

// TestEnvironment is an isolated project with its own user directories
type TestEnvironment struct {
	ProjectDir string
	ConfigDir  string
	StateDir   string

	t *testing.T
}

// NewTestEnvironment creates an empty project and points the pkgdeps user
// directories into the test's temp dir. Colors are disabled.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	env := &TestEnvironment{
		ProjectDir: filepath.Join(root, "project"),
		ConfigDir:  filepath.Join(root, "config"),
		StateDir:   filepath.Join(root, "state"),
		t:          t,
	}
	require.NoError(t, os.MkdirAll(env.ProjectDir, 0755))

	t.Setenv(paths.EnvConfigDir, env.ConfigDir)
	t.Setenv(paths.EnvStateDir, env.StateDir)
	t.Setenv("NO_COLOR", "1")

	return env
}

// Path returns rel resolved inside the project
func (env *TestEnvironment) Path(rel string) string {
	return filepath.Join(env.ProjectDir, filepath.FromSlash(rel))
}

// WriteFile writes a project file, creating parent directories
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()

	path := env.Path(rel)
	require.NoError(env.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteUserConfig writes the user level config.toml
func (env *TestEnvironment) WriteUserConfig(content string) string {
	env.t.Helper()

	path := filepath.Join(env.ConfigDir, paths.UserConfigFile)
	require.NoError(env.t, os.MkdirAll(env.ConfigDir, 0755))
	require.NoError(env.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// WriteComposerInstalled writes packages as a Composer 2 installed.json at
// the default location
func (env *TestEnvironment) WriteComposerInstalled(packages ...PackageConfig) string {
	env.t.Helper()
	return env.WriteFile(ComposerInstalledPath, ComposerInstalledJSON(packages...))
}

// Link is one declared dependency of a fixture package
type Link struct {
	Target     string
	Constraint string
}

// PackageConfig describes an installed package. Links keep their order.
type PackageConfig struct {
	Name       string
	Version    string
	Require    []Link
	RequireDev []Link
	Provide    []Link
	Replace    []Link
}

// ComposerInstalledJSON renders packages in the Composer 2 layout
func ComposerInstalledJSON(packages ...PackageConfig) string {
	var b strings.Builder
	b.WriteString("{\n  \"packages\": [")
	for i, pkg := range packages {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("\n    {\"name\": ")
		b.WriteString(quote(pkg.Name))
		b.WriteString(", \"version\": ")
		b.WriteString(quote(pkg.Version))
		writeLinks(&b, "require", pkg.Require)
		writeLinks(&b, "require-dev", pkg.RequireDev)
		writeLinks(&b, "provide", pkg.Provide)
		writeLinks(&b, "replace", pkg.Replace)
		b.WriteString("}")
	}
	b.WriteString("\n  ]\n}\n")
	return b.String()
}

// writeLinks writes a link map by hand so that entry order is preserved
func writeLinks(b *strings.Builder, key string, links []Link) {
	if len(links) == 0 {
		return
	}
	b.WriteString(", ")
	b.WriteString(quote(key))
	b.WriteString(": {")
	for i, link := range links {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(quote(link.Target))
		b.WriteString(": ")
		b.WriteString(quote(link.Constraint))
	}
	b.WriteString("}")
}

func quote(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
