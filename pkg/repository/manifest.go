package repository

import (
	"fmt"

	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/arthur-debert/pkgdeps/pkg/types"
	"github.com/beevik/etree"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Manifests are pkgdeps' own repository formats, for package sets that do
// not come from a package manager. All three formats describe the same
// model and keep link order as written.

// tomlManifest is the TOML layout:
//
//	[[package]]
//	name = "acme/app"
//	version = "1.0.0"
//	[[package.require]]
//	target = "psr/log"
//	constraint = "^1.0"
type tomlManifest struct {
	Packages []tomlPackage `toml:"package"`
}

type tomlPackage struct {
	Name       string     `toml:"name"`
	Version    string     `toml:"version"`
	Require    []tomlLink `toml:"require"`
	RequireDev []tomlLink `toml:"require-dev"`
	Provide    []tomlLink `toml:"provide"`
	Replace    []tomlLink `toml:"replace"`
}

type tomlLink struct {
	Target     string `toml:"target"`
	Constraint string `toml:"constraint"`
}

// LoadTOMLManifest parses a TOML package manifest
func LoadTOMLManifest(name string, data []byte) (*ArrayRepository, error) {
	var manifest tomlManifest
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRepositoryFormat, "failed to parse %s", name).
			WithDetail("path", name)
	}

	repo := NewArrayRepository(name)
	for i, p := range manifest.Packages {
		if p.Name == "" {
			return nil, missingName(name, i)
		}
		pkg := types.NewPackage(p.Name, p.Version)
		for _, group := range []struct {
			linkType types.LinkType
			links    []tomlLink
		}{
			{types.LinkRequire, p.Require},
			{types.LinkRequireDev, p.RequireDev},
			{types.LinkProvide, p.Provide},
			{types.LinkReplace, p.Replace},
		} {
			for _, l := range group.links {
				if l.Target == "" {
					return nil, errors.Newf(errors.ErrRepositoryFormat,
						"%s link of %s in %s has no target", group.linkType, p.Name, name).
						WithDetail("path", name)
				}
				pkg.AddLink(group.linkType, l.Target, l.Constraint)
			}
		}
		repo.AddPackage(pkg)
	}
	return repo, nil
}

// yamlManifest is the YAML layout:
//
//	packages:
//	  - name: acme/app
//	    version: 1.0.0
//	    require:
//	      psr/log: ^1.0
type yamlManifest struct {
	Packages []yamlPackage `yaml:"packages"`
}

type yamlPackage struct {
	Name       string    `yaml:"name"`
	Version    string    `yaml:"version"`
	Require    yamlLinks `yaml:"require"`
	RequireDev yamlLinks `yaml:"require-dev"`
	Provide    yamlLinks `yaml:"provide"`
	Replace    yamlLinks `yaml:"replace"`
}

// yamlLinks decodes a target → constraint mapping in document order
type yamlLinks []linkEntry

// UnmarshalYAML implements yaml.Unmarshaler
func (l *yamlLinks) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*l = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: links must be a mapping of target to constraint", value.Line)
	}

	entries := make(yamlLinks, 0, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: constraint for %s must be a string", val.Line, key.Value)
		}
		entries = append(entries, linkEntry{Target: key.Value, Constraint: val.Value})
	}
	*l = entries
	return nil
}

// LoadYAMLManifest parses a YAML package manifest
func LoadYAMLManifest(name string, data []byte) (*ArrayRepository, error) {
	var manifest yamlManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRepositoryFormat, "failed to parse %s", name).
			WithDetail("path", name)
	}

	repo := NewArrayRepository(name)
	for i, p := range manifest.Packages {
		if p.Name == "" {
			return nil, missingName(name, i)
		}
		pkg := types.NewPackage(p.Name, p.Version)
		addEntries(pkg, types.LinkRequire, p.Require)
		addEntries(pkg, types.LinkRequireDev, p.RequireDev)
		addEntries(pkg, types.LinkProvide, p.Provide)
		addEntries(pkg, types.LinkReplace, p.Replace)
		repo.AddPackage(pkg)
	}
	return repo, nil
}

// LoadXMLManifest parses an XML package manifest:
//
//	<packages>
//	  <package name="acme/app" version="1.0.0">
//	    <require target="psr/log" constraint="^1.0"/>
//	  </package>
//	</packages>
func LoadXMLManifest(name string, data []byte) (*ArrayRepository, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrapf(err, errors.ErrRepositoryFormat, "failed to parse %s", name).
			WithDetail("path", name)
	}

	root := doc.SelectElement("packages")
	if root == nil {
		return nil, errors.Newf(errors.ErrRepositoryFormat, "%s has no <packages> root element", name).
			WithDetail("path", name)
	}

	repo := NewArrayRepository(name)
	for i, el := range root.SelectElements("package") {
		pkgName := el.SelectAttrValue("name", "")
		if pkgName == "" {
			return nil, missingName(name, i)
		}
		pkg := types.NewPackage(pkgName, el.SelectAttrValue("version", ""))

		for _, child := range el.ChildElements() {
			linkType := types.LinkType(child.Tag)
			switch linkType {
			case types.LinkRequire, types.LinkRequireDev, types.LinkProvide, types.LinkReplace:
			default:
				return nil, errors.Newf(errors.ErrRepositoryFormat,
					"unknown element <%s> in package %s of %s", child.Tag, pkgName, name).
					WithDetail("path", name)
			}

			target := child.SelectAttrValue("target", "")
			if target == "" {
				return nil, errors.Newf(errors.ErrRepositoryFormat,
					"%s link of %s in %s has no target", linkType, pkgName, name).
					WithDetail("path", name)
			}
			pkg.AddLink(linkType, target, child.SelectAttrValue("constraint", ""))
		}
		repo.AddPackage(pkg)
	}
	return repo, nil
}

func missingName(repoName string, index int) error {
	return errors.Newf(errors.ErrRepositoryFormat, "package #%d in %s has no name", index+1, repoName).
		WithDetail("path", repoName)
}
