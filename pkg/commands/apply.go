package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/restyle/pkg/commands/options"
	"tableflip.dev/restyle/pkg/runner/apply"
	"tableflip.dev/restyle/pkg/store"
)

func addApply(topLevel *cobra.Command) {
	so := &options.StyleOptions{}
	sel := &options.SelectionOptions{}
	ro := &options.RunOptions{}

	cmd := &cobra.Command{
		Use:   "apply <page>",
		Short: "Apply a catalog style to the selected runs of a page.",
		Example: `
restyle apply notes --style="Heading 1"
restyle apply notes -s Emphasis --selection=0:1
restyle apply notes -s 3 --dry-run --verbose
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return pageCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if so.Style == "" {
				return errors.New("--style required")
			}
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			a := apply.Apply{
				Page:           args[0],
				Style:          so.Style,
				Selection:      sel.Selection,
				ClearSelection: sel.Clear,
				DryRun:         ro.DryRun,
				Verbose:        ro.Verbose,
				Persistence:    p,
			}
			err = a.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddStyleArgs(cmd, so)
	options.AddSelectionArgs(cmd, sel)
	options.AddRunArgs(cmd, ro)

	_ = cmd.RegisterFlagCompletionFunc("style", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return styleCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	topLevel.AddCommand(cmd)
}
