package depends

import (
	"github.com/arthur-debert/pkgdeps/pkg/depends"
	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/arthur-debert/pkgdeps/pkg/linktypes"
	"github.com/arthur-debert/pkgdeps/pkg/logging"
	"github.com/arthur-debert/pkgdeps/pkg/output"
	"github.com/arthur-debert/pkgdeps/pkg/pool"
	"github.com/arthur-debert/pkgdeps/pkg/repository"
)

// DependsOptions defines the options for the Depends command.
type DependsOptions struct {
	// Package is the queried package name as typed by the user.
	Package string

	// LinkTypes are the raw link type tokens; empty selects every known type.
	LinkTypes []string

	// Verbose prints one line per matching link instead of one per package.
	Verbose bool

	// Repositories are the local repositories of the project, scanned in order.
	Repositories []repository.Repository

	// Sink receives the output lines.
	Sink output.Sink
}

// Depends lists the installed packages that depend on opts.Package. The
// name is matched exactly as given.
// Link types are validated before the package is looked up, and nothing is
// written when either check fails.
func Depends(opts DependsOptions) (*depends.Result, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "Depends").Str("package", opts.Package).Msg("Executing command")

	linkTypes, err := linktypes.NormalizeAll(opts.LinkTypes)
	if err != nil {
		return nil, err
	}

	p := pool.New()
	for _, repo := range opts.Repositories {
		p.AddRepository(repo)
	}
	if len(p.WhatProvides(opts.Package)) == 0 {
		return nil, errors.Newf(errors.ErrPackageNotFound, "Could not find package \"%s\" in your project.", opts.Package).
			WithDetail("package", opts.Package)
	}

	inv := depends.NewInvocation(opts.Package, linkTypes, opts.Verbose, opts.Sink)
	for _, repo := range opts.Repositories {
		inv.Scan(repo)
	}

	if !inv.Found() {
		opts.Sink.Writeln(depends.NoDependentsLine(opts.Package))
	}

	if err := opts.Sink.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrOutput, "failed to write output")
	}

	result := inv.Result()
	log.Info().
		Str("command", "Depends").
		Str("package", opts.Package).
		Int("matches", result.Count).
		Int("dependents", len(result.Dependents)).
		Msg("Command finished")
	return &result, nil
}
