package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/pkgdeps/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/pkgdeps/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/pkgdeps/internal/version.Date={{.Date}}
)

// Info returns a one-line description of the build
func Info() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
