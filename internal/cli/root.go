package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/assetgraft/pkg/buildinfo"
	"github.com/matzehuels/assetgraft/pkg/observability"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// Logging:
//   - Default: info level (logs to the writer given to [New])
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. A reporter writing to c.Out is registered as the edit
// hooks.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Assetgraft edits and grafts actors between cooked game packages",
		Long:         `Assetgraft is a CLI tool for editing cooked map packages: detaching and renaming imports, removing actors from a level, setting property values, and transplanting actors with everything they depend on from a donor package.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			c.SetLogLevel(level)
			c.Logger.Debug(appName, "version", buildinfo.Short())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			observability.SetEditHooks(newReporter(c.Out))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.editCommand())
	root.AddCommand(c.dumpCommand())
	root.AddCommand(c.completionCommand())

	return root
}
