package repository

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/arthur-debert/pkgdeps/pkg/types"
)

// selfVersion is the constraint placeholder for "same version as the
// declaring package"
const selfVersion = "self.version"

// installedV2 is the Composer 2 installed.json layout
type installedV2 struct {
	Packages        []composerPackage `json:"packages"`
	Dev             bool              `json:"dev"`
	DevPackageNames []string          `json:"dev-package-names"`
}

// composerPackage is one entry of installed.json
type composerPackage struct {
	Name       string      `json:"name"`
	Version    string      `json:"version"`
	Require    linkEntries `json:"require"`
	RequireDev linkEntries `json:"require-dev"`
	Provide    linkEntries `json:"provide"`
	Replace    linkEntries `json:"replace"`
}

// linkEntry is one target/constraint pair of a link map
type linkEntry struct {
	Target     string
	Constraint string
}

// linkEntries decodes a JSON object of target → constraint while keeping the
// document order. Composer writes empty link maps as [], which is accepted.
type linkEntries []linkEntry

// UnmarshalJSON implements json.Unmarshaler
func (l *linkEntries) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch tok {
	case nil:
		*l = nil
		return nil
	case json.Delim('['):
		if dec.More() {
			return fmt.Errorf("link list must be an object, got a non-empty array")
		}
		*l = nil
		return nil
	case json.Delim('{'):
	default:
		return fmt.Errorf("link list must be an object, got %v", tok)
	}

	var entries linkEntries
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected link key %v", keyTok)
		}

		var constraint string
		if err := dec.Decode(&constraint); err != nil {
			return fmt.Errorf("constraint for %s: %w", key, err)
		}
		entries = append(entries, linkEntry{Target: key, Constraint: constraint})
	}

	*l = entries
	return nil
}

// LoadComposerInstalled parses a Composer installed.json document, either the
// Composer 1 top-level array or the Composer 2 object with a packages list.
func LoadComposerInstalled(name string, data []byte) (*ArrayRepository, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return NewArrayRepository(name), nil
	}

	var entries []composerPackage
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, errors.Wrapf(err, errors.ErrRepositoryFormat, "failed to parse %s", name).
				WithDetail("path", name)
		}
	case '{':
		var doc installedV2
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, errors.Wrapf(err, errors.ErrRepositoryFormat, "failed to parse %s", name).
				WithDetail("path", name)
		}
		entries = doc.Packages
	default:
		return nil, errors.Newf(errors.ErrRepositoryFormat, "%s is not a Composer installed.json document", name).
			WithDetail("path", name)
	}

	repo := NewArrayRepository(name)
	for i, entry := range entries {
		if entry.Name == "" {
			return nil, errors.Newf(errors.ErrRepositoryFormat, "package #%d in %s has no name", i+1, name).
				WithDetail("path", name)
		}
		repo.AddPackage(entry.toPackage())
	}
	return repo, nil
}

func (c composerPackage) toPackage() *types.Package {
	pkg := types.NewPackage(c.Name, c.Version)
	addEntries(pkg, types.LinkRequire, c.Require)
	addEntries(pkg, types.LinkRequireDev, c.RequireDev)
	addEntries(pkg, types.LinkProvide, c.Provide)
	addEntries(pkg, types.LinkReplace, c.Replace)
	return pkg
}

// addEntries adds links in order, substituting self.version with the
// package's own version
func addEntries(pkg *types.Package, linkType types.LinkType, entries []linkEntry) {
	for _, e := range entries {
		constraint := e.Constraint
		if constraint == selfVersion && pkg.PrettyVersion != "" {
			constraint = pkg.PrettyVersion
		}
		pkg.AddLink(linkType, e.Target, constraint)
	}
}
