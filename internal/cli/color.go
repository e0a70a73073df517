package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreplot/pkg/color"
)

// newColorCmd creates the color command, which normalizes each argument
// and prints a swatch of the result.
//
// Arguments are read as numbers where possible:
//
//	scoreplot color red "Steel Blue" "#f50" 0.8 0.5,0.5,0.5 255,128,0
func newColorCmd() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "color [spec...]",
		Short: "Normalize color specifications to #rrggbb",
		Args: func(cmd *cobra.Command, args []string) error {
			if !list && len(args) == 0 {
				return fmt.Errorf("requires at least 1 color spec (or --list)")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, name := range color.Names() {
					printSwatch(w, color.MustNormalize(name), name)
				}
				return nil
			}

			logger := loggerFromContext(cmd.Context())
			for _, arg := range args {
				spec := parseColorArg(arg)
				logger.Debug("Normalizing color", "arg", arg, "spec", fmt.Sprintf("%T", spec))
				hex, err := color.Normalize(spec)
				if err != nil {
					return err
				}
				printSwatch(w, hex, arg)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "list all recognized color names")
	return cmd
}

// parseColorArg converts a command-line argument into a color spec.
// "0.8" becomes a scalar, "0.5,0.5,0.5" a sequence, anything else a string.
func parseColorArg(arg string) any {
	if v, err := strconv.ParseFloat(arg, 64); err == nil {
		return v
	}
	if !strings.Contains(arg, ",") {
		return arg
	}

	parts := strings.Split(arg, ",")
	seq := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return arg
		}
		seq = append(seq, v)
	}
	return seq
}
