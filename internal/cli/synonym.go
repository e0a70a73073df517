package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/scoreplot/pkg/label"
	"github.com/matzehuels/scoreplot/pkg/synonym"
)

func newFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format [text...]",
		Short: "Resolve plot format synonyms",
		Long:  "Resolve plot format synonyms to canonical names. Multiple words are joined, so `scoreplot format weighted scatter` works without quotes.",
		Args:  cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return completeNames(synonym.Formats), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			f := synonym.ResolveFormat(text)
			printMapping(cmd.OutOrStdout(), text, string(f), f.Known())
			return nil
		},
	}
}

func newValuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values [value...]",
		Short: "Resolve plot value synonyms",
		Args:  cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return completeNames(synonym.Values), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for i, v := range synonym.ResolveValues(args) {
				printMapping(w, args[i], string(v), v.Known())
			}
			return nil
		},
	}
}

func newLabelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "label [label...]",
		Short: "Convert ASCII accidentals in pitch labels to glyphs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, arg := range args {
				printMapping(w, arg, label.Unicode(arg), true)
			}
			return nil
		},
	}
}

// completeNames offers the canonical names for shell completion.
func completeNames[T ~string](names []T) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
