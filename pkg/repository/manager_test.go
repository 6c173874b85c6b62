package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"vendor/composer/installed.json", FormatComposer},
		{"package-lock.json", FormatNpm},
		{"sub/npm-shrinkwrap.json", FormatNpm},
		{"packages.toml", FormatTOML},
		{"packages.yaml", FormatYAML},
		{"PACKAGES.YML", FormatYAML},
		{"packages.xml", FormatXML},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := DetectFormat(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := DetectFormat("composer.lock")
	assert.True(t, errors.IsErrorCode(err, errors.ErrRepositoryFormat))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "vendor/composer/installed.json", composerV1)

	repo, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, path, repo.Name())
	assert.Equal(t, 2, repo.Count())

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrRepositoryLoad))
}

func TestManager_LocalRepositories(t *testing.T) {
	dir := t.TempDir()
	installed := writeFile(t, dir, "vendor/composer/installed.json", composerV1)
	manifest := writeFile(t, dir, "extra.yaml", yamlManifestDoc)
	missing := filepath.Join(dir, "node", "package-lock.json")

	m := NewManager([]string{installed, missing, manifest})
	assert.Equal(t, []string{installed, missing, manifest}, m.Paths())

	repos, err := m.LocalRepositories()
	require.NoError(t, err)
	require.Len(t, repos, 3)

	assert.Equal(t, installed, repos[0].Name())
	assert.Equal(t, 2, repos[0].Count())
	assert.Equal(t, missing, repos[1].Name())
	assert.Equal(t, 0, repos[1].Count(), "a missing file is an empty repository")
	assert.Equal(t, 2, repos[2].Count())
}

func TestManager_LocalRepositories_Malformed(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "installed.json", "{broken")

	_, err := NewManager([]string{bad}).LocalRepositories()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRepositoryFormat))
}
