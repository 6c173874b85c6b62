package repositories

import (
	"os"

	"github.com/arthur-debert/pkgdeps/pkg/logging"
	"github.com/arthur-debert/pkgdeps/pkg/paths"
	"github.com/arthur-debert/pkgdeps/pkg/repository"
	"github.com/arthur-debert/pkgdeps/pkg/types"
)

// ListRepositoriesOptions defines the options for the ListRepositories command.
type ListRepositoriesOptions struct {
	// Paths resolves configured entries against the working directory.
	Paths *paths.Paths

	// Repositories are the configured repository files.
	Repositories []string
}

// ListRepositories loads every configured repository and reports its format
// and package count.
func ListRepositories(opts ListRepositoriesOptions) (*types.ListRepositoriesResult, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListRepositories").Msg("Executing command")

	resolved := make([]string, len(opts.Repositories))
	for i, entry := range opts.Repositories {
		resolved[i] = opts.Paths.Resolve(entry)
	}

	repos, err := repository.NewManager(resolved).LocalRepositories()
	if err != nil {
		return nil, err
	}

	result := &types.ListRepositoriesResult{
		Repositories: make([]types.RepositoryInfo, len(repos)),
	}
	for i, repo := range repos {
		info := types.RepositoryInfo{
			Path:     opts.Repositories[i],
			Packages: repo.Count(),
		}
		if format, err := repository.DetectFormat(resolved[i]); err == nil {
			info.Format = string(format)
		}
		if _, err := os.Stat(resolved[i]); err == nil {
			info.Exists = true
		}
		result.Repositories[i] = info
	}

	log.Info().Str("command", "ListRepositories").Int("repositoryCount", len(result.Repositories)).Msg("Command finished")
	return result, nil
}
