package repositories_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkgdeps/pkg/commands/repositories"
	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/arthur-debert/pkgdeps/pkg/paths"
	"github.com/arthur-debert/pkgdeps/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) *paths.Paths {
	t.Helper()
	env := testutil.NewTestEnvironment(t)
	env.WriteComposerInstalled(
		testutil.PackageConfig{Name: "acme/app", Version: "1.0.0", Require: []testutil.Link{{Target: "acme/lib", Constraint: "^2.0"}}},
		testutil.PackageConfig{Name: "acme/lib", Version: "2.1.0"},
	)

	p, err := paths.New(env.ProjectDir)
	require.NoError(t, err)
	return p
}

func TestListRepositories(t *testing.T) {
	p := setup(t)

	result, err := repositories.ListRepositories(repositories.ListRepositoriesOptions{
		Paths:        p,
		Repositories: []string{"vendor/composer/installed.json", "package-lock.json"},
	})
	require.NoError(t, err)
	require.Len(t, result.Repositories, 2)

	first := result.Repositories[0]
	assert.Equal(t, "vendor/composer/installed.json", first.Path)
	assert.Equal(t, "composer", first.Format)
	assert.True(t, first.Exists)
	assert.Equal(t, 2, first.Packages)

	second := result.Repositories[1]
	assert.Equal(t, "npm", second.Format)
	assert.False(t, second.Exists)
	assert.Equal(t, 0, second.Packages)

	assert.Equal(t, 2, result.TotalPackages())
}

func TestListRepositories_Empty(t *testing.T) {
	result, err := repositories.ListRepositories(repositories.ListRepositoriesOptions{Paths: setup(t)})
	require.NoError(t, err)
	assert.Empty(t, result.Repositories)
}

func TestListRepositories_Malformed(t *testing.T) {
	p := setup(t)
	require.NoError(t, os.WriteFile(filepath.Join(p.WorkingDir(), "broken.yaml"), []byte("packages: [:"), 0644))

	_, err := repositories.ListRepositories(repositories.ListRepositoriesOptions{
		Paths:        p,
		Repositories: []string{"broken.yaml"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRepositoryFormat))
}
