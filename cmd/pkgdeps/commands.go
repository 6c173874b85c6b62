package pkgdeps

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/pkgdeps/internal/version"
	"github.com/arthur-debert/pkgdeps/pkg/cobrax/topics"
	"github.com/arthur-debert/pkgdeps/pkg/commands/depends"
	"github.com/arthur-debert/pkgdeps/pkg/commands/repositories"
	"github.com/arthur-debert/pkgdeps/pkg/config"
	"github.com/arthur-debert/pkgdeps/pkg/errors"
	"github.com/arthur-debert/pkgdeps/pkg/linktypes"
	"github.com/arthur-debert/pkgdeps/pkg/logging"
	"github.com/arthur-debert/pkgdeps/pkg/output"
	"github.com/arthur-debert/pkgdeps/pkg/output/styles"
	"github.com/arthur-debert/pkgdeps/pkg/paths"
	"github.com/arthur-debert/pkgdeps/pkg/repository"
	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags of the root command
type globalOptions struct {
	verbosity  int
	workingDir string
	color      string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "pkgdeps",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Info(),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// The first -v selects verbose output, the rest raise the log level
			logging.SetupLogger(opts.verbosity - 1)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.workingDir, "working-dir", "d", "", MsgFlagWorkingDir)
	rootCmd.PersistentFlags().StringVar(&opts.color, "color", "", MsgFlagColor)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newDependsCmd(opts))
	rootCmd.AddCommand(newRepositoriesCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	topicOpts := topics.Options{
		Extensions: []string{".txt", ".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if !output.UseColor(output.ColorAuto, rootCmd.OutOrStdout()) {
		topicOpts.Renderer = topics.NewPlainGlamourRenderer()
	}
	if _, err := topics.InitializeWithOptions(rootCmd, helpTopics(), topicOpts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// project is the configured view of a working directory
type project struct {
	paths  *paths.Paths
	config *config.Config
}

// loadProject resolves paths and loads configuration. overrides are applied
// on top of every other configuration layer.
func loadProject(opts *globalOptions, overrides map[string]interface{}) (*project, error) {
	p, err := paths.New(opts.workingDir)
	if err != nil {
		return nil, fmt.Errorf(MsgErrInitPaths, err)
	}

	if overrides == nil {
		overrides = make(map[string]interface{})
	}
	if opts.color != "" {
		overrides["output.color"] = opts.color
	}

	cfg, err := config.Load(config.LoadOptions{
		UserConfigPath:     p.UserConfigPath(),
		ProjectConfigPaths: p.ProjectConfigPaths(),
		EnvFile:            p.EnvFilePath(),
		Overrides:          overrides,
	})
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	log.Debug().
		Str("working_dir", p.WorkingDir()).
		Strs("repositories", cfg.Repositories.Paths).
		Msg("Project loaded")

	return &project{paths: p, config: cfg}, nil
}

// localRepositories loads the configured repositories in scan order
func (pr *project) localRepositories() ([]repository.Repository, error) {
	files := make([]string, len(pr.config.Repositories.Paths))
	for i, path := range pr.config.Repositories.Paths {
		files[i] = pr.paths.Resolve(path)
	}
	return repository.NewManager(files).LocalRepositories()
}

// renderer creates the line sink for w
func (pr *project) renderer(w io.Writer) (*output.Renderer, error) {
	var styleCfg *styles.Config
	if path := pr.config.Output.Styles; path != "" {
		loaded, err := styles.Load(pr.paths.Resolve(path))
		if err != nil {
			return nil, fmt.Errorf(MsgErrLoadStyles, err)
		}
		styleCfg = loaded
	}
	return output.NewRenderer(w, pr.config.ColorMode(), styleCfg), nil
}

// flagOverrides turns --repository and --link-type values into
// configuration overrides
func flagOverrides(repos, linkTypes []string) map[string]interface{} {
	overrides := make(map[string]interface{})
	if len(repos) > 0 {
		overrides["repositories.paths"] = repos
	}
	if len(linkTypes) > 0 {
		overrides["depends.link_types"] = linkTypes
	}
	return overrides
}

// packageNamesCompletion completes installed package names
func packageNamesCompletion(opts *globalOptions, repos *[]string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		proj, err := loadProject(opts, flagOverrides(*repos, nil))
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		loaded, err := proj.localRepositories()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		seen := make(map[string]bool)
		var names []string
		for _, repo := range loaded {
			for _, pkg := range repo.Packages() {
				if !seen[pkg.Name] && strings.HasPrefix(pkg.Name, strings.ToLower(toComplete)) {
					seen[pkg.Name] = true
					names = append(names, pkg.Name)
				}
			}
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newDependsCmd(opts *globalOptions) *cobra.Command {
	var (
		linkTypes []string
		repos     []string
	)

	cmd := &cobra.Command{
		Use:               "depends <package>",
		Aliases:           []string{"why"},
		Short:             MsgDependsShort,
		Long:              MsgDependsLong,
		Example:           MsgDependsExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: packageNamesCompletion(opts, &repos),
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := loadProject(opts, flagOverrides(repos, linkTypes))
			if err != nil {
				return err
			}

			// Unknown link types fail before any repository is read
			if _, err := linktypes.NormalizeAll(proj.config.Depends.LinkTypes); err != nil {
				return err
			}

			loaded, err := proj.localRepositories()
			if err != nil {
				return err
			}

			sink, err := proj.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			log.Info().
				Str("package", args[0]).
				Strs("link_types", proj.config.Depends.LinkTypes).
				Int("repositories", len(loaded)).
				Msg("Searching dependents")

			_, err = depends.Depends(depends.DependsOptions{
				Package:      args[0],
				LinkTypes:    proj.config.Depends.LinkTypes,
				Verbose:      opts.verbosity >= 1,
				Repositories: loaded,
				Sink:         sink,
			})
			return err
		},
	}

	cmd.Flags().StringArrayVar(&linkTypes, "link-type", nil, MsgFlagLinkType)
	cmd.Flags().StringArrayVarP(&repos, "repository", "r", nil, MsgFlagRepository)
	_ = cmd.RegisterFlagCompletionFunc("link-type", cobra.FixedCompletions(
		linktypes.Names(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func newRepositoriesCmd(opts *globalOptions) *cobra.Command {
	var repos []string

	cmd := &cobra.Command{
		Use:     "repositories",
		Short:   MsgRepositoriesShort,
		Long:    MsgRepositoriesLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := loadProject(opts, flagOverrides(repos, nil))
			if err != nil {
				return err
			}

			result, err := repositories.ListRepositories(repositories.ListRepositoriesOptions{
				Paths:        proj.paths,
				Repositories: proj.config.Repositories.Paths,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(result.Repositories) == 0 {
				fmt.Fprintln(out, MsgNoRepositories)
				return nil
			}

			if output.UseColor(proj.config.ColorMode(), out) {
				pterm.EnableStyling()
			} else {
				pterm.DisableStyling()
			}

			data := pterm.TableData{strings.Split(MsgRepositoriesHead, "|")}
			for _, info := range result.Repositories {
				data = append(data, []string{
					info.Path,
					info.Format,
					strconv.FormatBool(info.Exists),
					strconv.Itoa(info.Packages),
				})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, table)
			fmt.Fprintf(out, MsgRepositoryTotal, result.TotalPackages(), len(result.Repositories))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&repos, "repository", "r", nil, MsgFlagRepository)

	return cmd
}

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultContent())
				return err
			}

			proj, err := loadProject(opts, nil)
			if err != nil {
				return err
			}

			data, err := toml.Marshal(proj.config)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)

	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
