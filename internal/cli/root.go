// Package cli implements the scoreplot command-line interface.
//
// The commands expose each normalizer directly, which makes them handy for
// checking how a plot option will be interpreted before it goes into a
// config file.
//
// # Commands
//
//   - color: Normalize color specifications to #rrggbb
//   - format: Resolve plot format synonyms
//   - values: Resolve plot value synonyms
//   - label: Convert ASCII accidentals to display glyphs
//   - resolve: Resolve a whole config file
//   - backend: Report which plotting components can be loaded
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreplot/pkg/buildinfo"
)

// Execute runs the scoreplot CLI and returns an error if any command fails.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand creates the root command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var verbose bool
	var configPath string

	root := &cobra.Command{
		Use:          "scoreplot",
		Short:        "Scoreplot normalizes plot options for music notation charts",
		Long:         `Scoreplot resolves the loosely written options of a music plot (formats, axis values, series colors and pitch labels) into the canonical form the renderer expects.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			ctx = withConfigPath(ctx, configPath)
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/scoreplot/config.toml)")

	root.AddCommand(newColorCmd())
	root.AddCommand(newFormatCmd())
	root.AddCommand(newValuesCmd())
	root.AddCommand(newLabelCmd())
	root.AddCommand(newResolveCmd())
	root.AddCommand(newBackendCmd())

	return root
}
