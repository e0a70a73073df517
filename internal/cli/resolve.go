package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreplot/pkg/plot"
)

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [config]",
		Short: "Resolve the plot options of a config file",
		Long:  "Resolve the [plot] table of a config file. Without an argument, the --config file or the default config location is used.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPathFromContext(cmd.Context())
			if len(args) == 1 {
				path = args[0]
			}
			return runResolve(cmd, path)
		},
	}
}

func runResolve(cmd *cobra.Command, path string) error {
	cfg, err := loadConfig(cmd.Context(), path)
	if err != nil {
		return err
	}
	r, err := plot.Resolve(cfg.Plot)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	format := string(r.Format)
	if format == "" {
		format = styleDim.Render("(default)")
	}
	printKeyValue(w, "format", format)

	values := make([]string, len(r.Values))
	for i, v := range r.Values {
		values[i] = string(v)
	}
	printKeyValue(w, "values", strings.Join(values, ", "))
	if r.Title != "" {
		printKeyValue(w, "title", r.Title)
	}
	if len(r.Labels) > 0 {
		printKeyValue(w, "labels", strings.Join(r.Labels, " "))
	}
	printKeyValue(w, "colors", fmt.Sprintf("%d", len(r.Colors)))
	for _, hex := range r.Colors {
		printSwatch(w, hex, "")
	}

	for _, v := range r.Values {
		if !v.Known() {
			printWarning(w, "unrecognized value %q", v)
		}
	}
	if r.Format != "" && !r.Format.Known() {
		printWarning(w, "unrecognized format %q", r.Format)
	}
	return nil
}

// loadConfig reads the config at path, or the default config when path is empty.
func loadConfig(ctx context.Context, path string) (*plot.Config, error) {
	logger := loggerFromContext(ctx)
	if path == "" {
		logger.Debug("Loading default config")
		return plot.LoadDefaultConfig()
	}
	logger.Debug("Loading config", "path", path)
	return plot.LoadConfig(path)
}
