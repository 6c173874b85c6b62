package repository

import (
	"os"

	"github.com/arthur-debert/pkgdeps/pkg/logging"
)

// Manager knows the local repositories of a project
type Manager struct {
	paths []string
}

// NewManager creates a manager for the repository files at paths, which
// are scanned in the given order
func NewManager(paths []string) *Manager {
	return &Manager{paths: append([]string(nil), paths...)}
}

// Paths returns the configured repository files
func (m *Manager) Paths() []string {
	return append([]string(nil), m.paths...)
}

// LocalRepositories loads every configured repository in order. A missing
// file yields an empty repository: nothing has been installed there yet.
func (m *Manager) LocalRepositories() ([]Repository, error) {
	log := logging.GetLogger("repository.Manager")

	repos := make([]Repository, 0, len(m.paths))
	for _, path := range m.paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Warn().Str("path", path).Msg("Repository file not found, treating it as empty")
			repos = append(repos, NewArrayRepository(path))
			continue
		}

		repo, err := LoadFile(path)
		if err != nil {
			return nil, err
		}

		log.Debug().Str("path", path).Int("packages", repo.Count()).Msg("Loaded repository")
		repos = append(repos, repo)
	}

	return repos, nil
}
