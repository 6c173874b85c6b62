package repository

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/arthur-debert/pkgdeps/pkg/types"
)

// npmLockfile is the package-lock.json layout for lockfile versions 2 and 3
type npmLockfile struct {
	Name            string                    `json:"name"`
	Version         string                    `json:"version"`
	LockfileVersion int                       `json:"lockfileVersion"`
	Packages        map[string]npmLockPackage `json:"packages"`
}

// npmLockPackage is a single entry of the packages map
type npmLockPackage struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Dev             bool              `json:"dev"`
}

const nodeModules = "node_modules/"

// LoadNpmLockfile parses an npm package-lock.json (v2 or v3). The project
// root entry is included so its devDependencies can be queried. Entries
// and their dependencies are ordered by install path and name since the
// lockfile stores them in JSON objects.
func LoadNpmLockfile(name string, data []byte) (*ArrayRepository, error) {
	var lock npmLockfile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRepositoryFormat, "failed to parse %s", name).
			WithDetail("path", name)
	}

	if lock.LockfileVersion < 2 || lock.Packages == nil {
		return nil, errors.Newf(errors.ErrRepositoryFormat,
			"unsupported lockfile version: %d (expected 2 or 3)", lock.LockfileVersion).
			WithDetail("path", name)
	}

	installPaths := make([]string, 0, len(lock.Packages))
	for p := range lock.Packages {
		installPaths = append(installPaths, p)
	}
	sort.Strings(installPaths)

	repo := NewArrayRepository(name)
	for _, installPath := range installPaths {
		entry := lock.Packages[installPath]

		pkgName := entry.Name
		if pkgName == "" {
			pkgName = npmNameFromPath(installPath)
		}
		if installPath == "" && pkgName == "" {
			pkgName = lock.Name
		}
		if pkgName == "" {
			continue
		}

		pkg := types.NewPackage(pkgName, entry.Version)
		addSortedMap(pkg, types.LinkRequire, entry.Dependencies)
		addSortedMap(pkg, types.LinkRequireDev, entry.DevDependencies)
		repo.AddPackage(pkg)
	}
	return repo, nil
}

// npmNameFromPath extracts the package name from an install path such as
// node_modules/a/node_modules/@scope/b
func npmNameFromPath(installPath string) string {
	idx := strings.LastIndex(installPath, nodeModules)
	if idx < 0 {
		return ""
	}
	return installPath[idx+len(nodeModules):]
}

func addSortedMap(pkg *types.Package, linkType types.LinkType, deps map[string]string) {
	names := make([]string, 0, len(deps))
	for dep := range deps {
		names = append(names, dep)
	}
	sort.Strings(names)
	for _, dep := range names {
		pkg.AddLink(linkType, dep, deps[dep])
	}
}
