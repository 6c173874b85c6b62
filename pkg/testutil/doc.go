// Package testutil provides utilities for testing pkgdeps components.
//
// Key components:
//   - TestEnvironment: an isolated project directory with its own XDG
//     config and state directories
//   - PackageConfig: declarative installed-package fixtures written as
//     Composer installed.json files
//
// All test data is defined inline and every environment is removed when the
// test ends.
package testutil
