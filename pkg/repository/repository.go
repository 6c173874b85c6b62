// Package repository provides the package collections a reverse dependency
// query scans: an in-memory repository, loaders for the installed-package
// files of several ecosystems, and a manager that loads the local
// repositories of a project.
package repository

import (
	"github.com/arthur-debert/pkgdeps/pkg/types"
)

// Repository is an ordered, read-only collection of installed packages
type Repository interface {
	// Name identifies the repository in logs and listings
	Name() string

	// Packages returns the packages in repository order
	Packages() []*types.Package

	// Count returns the number of packages
	Count() int

	// FilterPackages calls fn once per package in repository order until fn
	// returns false. It reports whether every package was visited.
	FilterPackages(fn func(pkg *types.Package) bool) bool
}

// ArrayRepository is an in-memory Repository
type ArrayRepository struct {
	name     string
	packages []*types.Package
}

// NewArrayRepository creates a repository holding pkgs in the given order
func NewArrayRepository(name string, pkgs ...*types.Package) *ArrayRepository {
	return &ArrayRepository{
		name:     name,
		packages: append([]*types.Package(nil), pkgs...),
	}
}

// AddPackage appends pkg
func (r *ArrayRepository) AddPackage(pkg *types.Package) {
	r.packages = append(r.packages, pkg)
}

// Name returns the repository name
func (r *ArrayRepository) Name() string {
	return r.name
}

// Packages returns a copy of the package list
func (r *ArrayRepository) Packages() []*types.Package {
	return append([]*types.Package(nil), r.packages...)
}

// Count returns the number of packages
func (r *ArrayRepository) Count() int {
	return len(r.packages)
}

// FilterPackages visits the packages in order until fn returns false
func (r *ArrayRepository) FilterPackages(fn func(pkg *types.Package) bool) bool {
	for _, pkg := range r.packages {
		if !fn(pkg) {
			return false
		}
	}
	return true
}
