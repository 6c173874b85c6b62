// Package output implements the line sinks pkgdeps writes query results to.
//
// Lines may carry inline markup tags named after styles in pkg/output/styles:
//
//	acme/app 1.0.0 <info>require</info> ^2.0
//
// A Renderer expands those tags to ANSI styling when color is enabled and
// strips them otherwise. A Buffer keeps lines exactly as emitted, which is
// what tests assert on. Every sink preserves emission order.
package output
