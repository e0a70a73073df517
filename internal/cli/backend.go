package cli

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreplot/pkg/backend"
)

func newBackendCmd() *cobra.Command {
	var noGraphviz, noExport bool

	cmd := &cobra.Command{
		Use:   "backend",
		Short: "Report which plotting components can be loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var extra []backend.Option
			if noGraphviz {
				extra = append(extra, backend.WithoutGraphviz())
			}
			if noExport {
				extra = append(extra, backend.WithoutExport())
			}
			return runBackend(cmd, extra)
		},
	}

	cmd.Flags().BoolVar(&noGraphviz, "no-graphviz", false, "skip starting the Graphviz runtime")
	cmd.Flags().BoolVar(&noExport, "no-export", false, "skip looking up the SVG converter")
	return cmd
}

// runBackend loads the backend with the config's [backend] settings plus
// extra, prints the component status, and releases the bundle.
func runBackend(cmd *cobra.Command, extra []backend.Option) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(ctx, configPathFromContext(ctx))
	if err != nil {
		return err
	}

	opts := append([]backend.Option{backend.WithLogger(logger)}, cfg.BackendOptions()...)
	opts = append(opts, extra...)

	prog := newProgress(logger)
	b, err := backend.Load(ctx, opts...)
	if err != nil {
		printError(cmd.OutOrStdout(), "%s unavailable", backend.ComponentChart)
		return err
	}
	defer b.Close()
	prog.done("Loaded plotting backend")

	w := cmd.OutOrStdout()
	available := b.Available()
	for _, name := range []string{backend.ComponentChart, backend.ComponentGraphviz, backend.ComponentExport} {
		if slices.Contains(available, name) {
			printSuccess(w, "%s", name)
		} else {
			printWarning(w, "%s unavailable", name)
		}
	}
	if b.Converter != "" {
		printKeyValue(w, "converter", b.Converter)
	}
	return nil
}
