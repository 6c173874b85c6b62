// Package depends finds the installed packages that declare a link to a
// given package.
//
// A query is represented by an Invocation. It scans repositories in the order
// they are passed to Scan and writes one line per result to an output.Sink:
//
//   - terse mode writes the pretty name of each depending package, once per
//     canonical name for the whole invocation, in first-seen order
//   - verbose mode writes every matching link as
//     "<name> <version> <info><type></info> <constraint>"
//
// Packages are visited in repository order, link types in the order the
// caller selected them, and links in the order the package declares them, so
// identical inputs always produce identical output.
//
// Matches exposes the same traversal as a lazy sequence for callers that
// want the match records rather than rendered lines.
package depends
