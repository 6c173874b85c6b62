package types

import "strings"

// LinkType names the category a link was declared under
type LinkType string

const (
	// LinkRequire is a run-time requirement
	LinkRequire LinkType = "require"

	// LinkRequireDev is a development-only requirement
	LinkRequireDev LinkType = "require-dev"

	// LinkProvide declares that the source package provides the target name
	LinkProvide LinkType = "provide"

	// LinkReplace declares that the source package replaces the target
	LinkReplace LinkType = "replace"
)

// String returns the link type as written in manifests
func (t LinkType) String() string {
	return string(t)
}

// Link is a directed dependency declaration from one package to a named target
type Link struct {
	// Source is the canonical name of the declaring package
	Source string

	// Target is the canonical name of the package pointed at
	Target string

	// Type is the category the link was declared under
	Type LinkType

	// PrettyConstraint is the constraint as written by the package author
	PrettyConstraint string
}

// Package is an installed package record. Records are treated as immutable
// once a repository has been loaded.
type Package struct {
	// Name is the lowercase canonical key
	Name string

	// PrettyName is the name in its display form
	PrettyName string

	// PrettyVersion is the version in its display form
	PrettyVersion string

	Requires    []Link
	DevRequires []Link
	Provides    []Link
	Replaces    []Link
}

// NewPackage creates a package record; the canonical name is derived from
// prettyName.
func NewPackage(prettyName, prettyVersion string) *Package {
	return &Package{
		Name:          CanonicalName(prettyName),
		PrettyName:    prettyName,
		PrettyVersion: prettyVersion,
	}
}

// AddLink appends a link of the given type to the package. The target is
// stored in canonical form.
func (p *Package) AddLink(linkType LinkType, target, prettyConstraint string) {
	link := Link{
		Source:           p.Name,
		Target:           CanonicalName(target),
		Type:             linkType,
		PrettyConstraint: prettyConstraint,
	}

	switch linkType {
	case LinkRequire:
		p.Requires = append(p.Requires, link)
	case LinkRequireDev:
		p.DevRequires = append(p.DevRequires, link)
	case LinkProvide:
		p.Provides = append(p.Provides, link)
	case LinkReplace:
		p.Replaces = append(p.Replaces, link)
	}
}

// String returns "prettyName prettyVersion"
func (p *Package) String() string {
	if p.PrettyVersion == "" {
		return p.PrettyName
	}
	return p.PrettyName + " " + p.PrettyVersion
}

// CanonicalName returns the lookup key for a package name
func CanonicalName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
