// Command pkgdeps-manpage generates the pkgdeps manual. With no argument the
// single man page is written to stdout; with a directory one page per
// command is written there, or markdown with --markdown.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/pkgdeps/cmd/pkgdeps"
	"github.com/arthur-debert/pkgdeps/internal/version"
)

func main() {
	var markdown bool

	genCmd := &cobra.Command{
		Use:          "pkgdeps-manpage [dir]",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rootCmd := pkgdeps.NewRootCmd()

			header := &doc.GenManHeader{
				Title:   "PKGDEPS",
				Section: "1",
				Source:  "pkgdeps " + version.Version,
				Manual:  "pkgdeps manual",
			}

			switch {
			case len(args) == 0:
				return doc.GenMan(rootCmd, header, cmd.OutOrStdout())
			case markdown:
				return doc.GenMarkdownTree(rootCmd, args[0])
			default:
				return doc.GenManTree(rootCmd, header, args[0])
			}
		},
	}
	genCmd.Flags().BoolVar(&markdown, "markdown", false, "write markdown instead of man pages")

	if err := genCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating manual: %v\n", err)
		os.Exit(1)
	}
}
