package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/restyle/pkg/commands/options"
	"tableflip.dev/restyle/pkg/runner/styles"
	"tableflip.dev/restyle/pkg/store"
)

func addStyles(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "styles",
		Aliases: []string{"catalog"},
		Short:   "List the style catalog.",
		Example: `
restyle styles
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runStyles(&styles.Styles{})
		},
	}

	addStylesReset(cmd)
	addStylesAdd(cmd)
	addStylesRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addStylesReset(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restore the default style catalog.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runStyles(&styles.Styles{Reset: true})
		},
	}
	parent.AddCommand(cmd)
}

func addStylesAdd(parent *cobra.Command) {
	do := &options.DefineOptions{}
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or replace a catalog style.",
		Example: `
restyle styles add Warning --css="color:#c00000;font-weight:bold"
restyle styles add Title --kind=paragraph --css="font-size:20pt" --space-after=12
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := do.Descriptor(args[0])
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return runStyles(&styles.Styles{Add: d})
		},
	}
	options.AddDefineArgs(cmd, do)
	parent.AddCommand(cmd)
}

func addStylesRemove(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove <style>",
		Aliases: []string{"rm"},
		Short:   "Remove a catalog style by index or name.",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return styleCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runStyles(&styles.Styles{Remove: args[0]})
		},
	}
	parent.AddCommand(cmd)
}

func runStyles(s *styles.Styles) error {
	p, err := store.Load(nil)
	if err != nil {
		return output.HandleError(err)
	}
	s.Persistence = p
	err = s.Do(context.Background())
	return output.HandleError(err)
}
