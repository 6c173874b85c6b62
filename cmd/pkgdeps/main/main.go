package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/pkgdeps/cmd/pkgdeps"
	"github.com/arthur-debert/pkgdeps/pkg/output"
)

func main() {
	rootCmd := pkgdeps.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in the error style
		stderr := output.NewRenderer(os.Stderr, output.ColorAuto, nil)
		stderr.Writeln(fmt.Sprintf("<error>Error: %s</error>", output.Escape(err.Error())))
		os.Exit(1)
	}
}
