package pkgdeps

import (
	"embed"
	"io/fs"
)

//go:embed topics
var topicsFS embed.FS

// helpTopics returns the embedded help topics
func helpTopics() fs.FS {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
