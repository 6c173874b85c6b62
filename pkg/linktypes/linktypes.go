// Package linktypes resolves user supplied link-type tokens ("require",
// "requires", "require-dev") to canonical link types and maps each link type
// to the accessor that reads that category of links from a package record.
//
// The set of selectable link types is closed. Provide and replace links exist
// on package records but are only consulted by the pool, never selected here.
package linktypes

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/arthur-debert/pkgdeps/pkg/types"
)

// Accessor returns one category of links declared by a package
type Accessor func(pkg *types.Package) []types.Link

// known lists the selectable link types in declaration order
var known = []types.LinkType{
	types.LinkRequire,
	types.LinkRequireDev,
}

// Known returns every selectable link type in declaration order. The
// returned slice is a copy.
func Known() []types.LinkType {
	out := make([]types.LinkType, len(known))
	copy(out, known)
	return out
}

// Names returns the known link types as strings, for messages and completion
func Names() []string {
	names := make([]string, len(known))
	for i, t := range known {
		names[i] = string(t)
	}
	return names
}

// Has reports whether t is a selectable link type
func Has(t types.LinkType) bool {
	for _, k := range known {
		if k == t {
			return true
		}
	}
	return false
}

// Normalize strips a single trailing "s" from token and looks the result up
// case-sensitively among the known link types.
func Normalize(token string) (types.LinkType, error) {
	candidate := types.LinkType(strings.TrimSuffix(token, "s"))
	if Has(candidate) {
		return candidate, nil
	}

	return "", errors.Newf(errors.ErrUnknownLinkType,
		"Unexpected link type: %s, valid types: %s", token, strings.Join(Names(), ", ")).
		WithDetail("token", token).
		WithDetail("valid", Names())
}

// NormalizeAll normalizes tokens in order. No tokens selects every known
// link type. A link type requested twice is kept once, at its first position.
func NormalizeAll(tokens []string) ([]types.LinkType, error) {
	if len(tokens) == 0 {
		return Known(), nil
	}

	selected := make([]types.LinkType, 0, len(tokens))
	for _, token := range tokens {
		t, err := Normalize(token)
		if err != nil {
			return nil, err
		}
		if !contains(selected, t) {
			selected = append(selected, t)
		}
	}
	return selected, nil
}

// AccessorFor returns the accessor for a link type returned by Normalize.
// Any other value is a programming error and panics.
func AccessorFor(t types.LinkType) Accessor {
	switch t {
	case types.LinkRequire:
		return func(pkg *types.Package) []types.Link { return pkg.Requires }
	case types.LinkRequireDev:
		return func(pkg *types.Package) []types.Link { return pkg.DevRequires }
	default:
		panic(fmt.Sprintf("linktypes: no accessor for link type %q", t))
	}
}

func contains(list []types.LinkType, t types.LinkType) bool {
	for _, item := range list {
		if item == t {
			return true
		}
	}
	return false
}
