// Package types defines the data model shared across pkgdeps: installed
// package records, the typed links they declare, and the match records the
// reverse dependency scan produces.
package types
