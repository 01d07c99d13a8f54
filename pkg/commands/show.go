package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/restyle/pkg/commands/options"
	"tableflip.dev/restyle/pkg/runner/show"
	"tableflip.dev/restyle/pkg/store"
)

func addShow(topLevel *cobra.Command) {
	so := &options.ShowOptions{}

	cmd := &cobra.Command{
		Use:   "show <page>",
		Short: "Render a stored page.",
		Example: `
restyle show notes
restyle show notes --runs
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return pageCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			s := show.Show{
				Page:        args[0],
				Runs:        so.Runs,
				Width:       so.Width,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
