package pkgdeps

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort         = "Show why a package is installed"
	MsgDependsShort      = "List the installed packages that depend on a package"
	MsgRepositoriesShort = "List the configured local repositories"
	MsgConfigShort       = "Print the effective configuration"
	MsgCompletionShort   = "Generate shell completion script"

	// Status messages
	MsgNoRepositories   = "No repositories configured."
	MsgRepositoriesHead = "Path|Format|Present|Packages"
	MsgRepositoryTotal  = "\n%d package(s) in %d repositor(y/ies)\n"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrInitPaths  = "failed to initialize paths: %w"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrLoadStyles = "failed to load styles: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Verbose output; repeat to raise the log level (-vv INFO, -vvv DEBUG, -vvvv TRACE)"
	MsgFlagWorkingDir = "Project directory (defaults to the current directory)"
	MsgFlagLinkType   = "Link type to search (require, require-dev); repeatable"
	MsgFlagRepository = "Repository file to scan instead of the configured ones; repeatable"
	MsgFlagColor      = "Colorize output: auto, always or never"
	MsgFlagDefaults   = "Print the built-in defaults instead of the effective configuration"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/depends-long.txt
	msgDependsLongRaw string
	MsgDependsLong    = strings.TrimSpace(msgDependsLongRaw)

	//go:embed msgs/depends-example.txt
	msgDependsExampleRaw string
	MsgDependsExample    = strings.TrimRight(msgDependsExampleRaw, "\n")

	//go:embed msgs/repositories-long.txt
	msgRepositoriesLongRaw string
	MsgRepositoriesLong    = strings.TrimSpace(msgRepositoriesLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
