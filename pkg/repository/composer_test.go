package repository

import (
	"testing"

	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/arthur-debert/pkgdeps/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const composerV1 = `[
  {
    "name": "Monolog/Monolog",
    "version": "2.9.1",
    "require": {"php": ">=7.2", "psr/log": "^1.0.1 || ^2.0 || ^3.0"},
    "require-dev": {"phpunit/phpunit": "^8.5.14", "aws/aws-sdk-php": "^2.4.9 || ^3.0"},
    "provide": {"psr/log-implementation": "1.0.0 || 2.0.0 || 3.0.0"}
  },
  {
    "name": "psr/log",
    "version": "1.1.4",
    "require": {"php": ">=5.3.0"},
    "require-dev": []
  }
]`

const composerV2 = `{
  "packages": [
    {
      "name": "symfony/polyfill-php80",
      "version": "v1.28.0",
      "require": {"php": ">=7.1"},
      "replace": {"symfony/polyfill-legacy": "self.version"}
    }
  ],
  "dev": true,
  "dev-package-names": []
}`

func TestLoadComposerInstalled_V1(t *testing.T) {
	repo, err := LoadComposerInstalled("installed.json", []byte(composerV1))
	require.NoError(t, err)
	require.Equal(t, 2, repo.Count())

	monolog := repo.Packages()[0]
	assert.Equal(t, "monolog/monolog", monolog.Name)
	assert.Equal(t, "Monolog/Monolog", monolog.PrettyName)
	assert.Equal(t, "2.9.1", monolog.PrettyVersion)

	// document order is kept
	require.Len(t, monolog.Requires, 2)
	assert.Equal(t, "php", monolog.Requires[0].Target)
	assert.Equal(t, "psr/log", monolog.Requires[1].Target)
	assert.Equal(t, "^1.0.1 || ^2.0 || ^3.0", monolog.Requires[1].PrettyConstraint)

	require.Len(t, monolog.DevRequires, 2)
	assert.Equal(t, "phpunit/phpunit", monolog.DevRequires[0].Target)
	assert.Equal(t, "aws/aws-sdk-php", monolog.DevRequires[1].Target)

	require.Len(t, monolog.Provides, 1)
	assert.Equal(t, types.LinkProvide, monolog.Provides[0].Type)

	psrLog := repo.Packages()[1]
	assert.Empty(t, psrLog.DevRequires, "an empty array is an empty link list")
}

func TestLoadComposerInstalled_V2(t *testing.T) {
	repo, err := LoadComposerInstalled("installed.json", []byte(composerV2))
	require.NoError(t, err)
	require.Equal(t, 1, repo.Count())

	polyfill := repo.Packages()[0]
	require.Len(t, polyfill.Replaces, 1)
	assert.Equal(t, "v1.28.0", polyfill.Replaces[0].PrettyConstraint, "self.version resolves to the package version")
}

func TestLoadComposerInstalled_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json"},
		{"scalar document", `"installed"`},
		{"broken array", `[{"name": "a/b",`},
		{"missing name", `[{"version": "1.0.0"}]`},
		{"non-empty link array", `[{"name": "a/b", "require": ["c/d"]}]`},
		{"non-string constraint", `[{"name": "a/b", "require": {"c/d": 1}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadComposerInstalled("installed.json", []byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrRepositoryFormat), "got %v", err)
		})
	}
}

func TestLoadComposerInstalled_EmptyDocument(t *testing.T) {
	repo, err := LoadComposerInstalled("installed.json", []byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, 0, repo.Count())

	repo, err = LoadComposerInstalled("installed.json", []byte(`{"packages": []}`))
	require.NoError(t, err)
	assert.Equal(t, 0, repo.Count())
}
