// Package pool answers whether a package name is known to any repository of
// the project, either as an installed package or as a name that an
// installed package provides or replaces.
package pool

import (
	"github.com/arthur-debert/pkgdeps/pkg/repository"
	"github.com/arthur-debert/pkgdeps/pkg/types"
)

// Pool indexes the packages of one or more repositories by the names they
// answer to
type Pool struct {
	providers map[string][]*types.Package
	count     int
}

// New creates an empty pool
func New() *Pool {
	return &Pool{providers: make(map[string][]*types.Package)}
}

// AddRepository indexes every package of repo. Repositories are indexed in
// the order they are added.
func (p *Pool) AddRepository(repo repository.Repository) {
	repo.FilterPackages(func(pkg *types.Package) bool {
		p.add(pkg.Name, pkg)
		for _, link := range pkg.Provides {
			p.add(link.Target, pkg)
		}
		for _, link := range pkg.Replaces {
			p.add(link.Target, pkg)
		}
		p.count++
		return true
	})
}

func (p *Pool) add(name string, pkg *types.Package) {
	for _, existing := range p.providers[name] {
		if existing == pkg {
			return
		}
	}
	p.providers[name] = append(p.providers[name], pkg)
}

// WhatProvides returns the packages named name or providing or replacing
// it, in indexing order. The lookup is exact.
func (p *Pool) WhatProvides(name string) []*types.Package {
	return append([]*types.Package(nil), p.providers[name]...)
}

// Count returns the number of indexed packages
func (p *Pool) Count() int {
	return p.count
}
