package repository

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/pkgdeps/pkg/errors"
)

// Format identifies an installed-package file format
type Format string

const (
	FormatComposer Format = "composer"
	FormatNpm      Format = "npm"
	FormatTOML     Format = "toml"
	FormatYAML     Format = "yaml"
	FormatXML      Format = "xml"
)

// parsers maps each format to its decoder
var parsers = map[Format]func(name string, data []byte) (*ArrayRepository, error){
	FormatComposer: LoadComposerInstalled,
	FormatNpm:      LoadNpmLockfile,
	FormatTOML:     LoadTOMLManifest,
	FormatYAML:     LoadYAMLManifest,
	FormatXML:      LoadXMLManifest,
}

// DetectFormat picks the format from the file name
func DetectFormat(path string) (Format, error) {
	base := strings.ToLower(filepath.Base(path))
	switch base {
	case "package-lock.json", "npm-shrinkwrap.json":
		return FormatNpm, nil
	}

	switch filepath.Ext(base) {
	case ".json":
		return FormatComposer, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".xml":
		return FormatXML, nil
	}

	return "", errors.Newf(errors.ErrRepositoryFormat, "cannot tell the repository format of %s", path).
		WithDetail("path", path)
}

// LoadFile reads and parses the repository file at path
func LoadFile(path string) (*ArrayRepository, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRepositoryLoad, "failed to read repository %s", path).
			WithDetail("path", path)
	}

	return parsers[format](path, data)
}
