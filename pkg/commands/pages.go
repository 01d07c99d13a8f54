package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/restyle/pkg/runner/pages"
	"tableflip.dev/restyle/pkg/store"
)

func addPages(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pages [prefix]",
		Short: "List stored pages.",
		Example: `
restyle pages
restyle pages meet
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			l := pages.List{Persistence: p}
			if len(args) == 1 {
				l.Prefix = args[0]
			}
			err = l.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <page> <file>",
		Short: "Store a page document read from a file, or - for stdin.",
		Example: `
restyle import notes notes.xml
cat notes.xml | restyle import notes -
`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			i := pages.Import{
				Name:        args[0],
				File:        args[1],
				In:          cmd.InOrStdin(),
				Persistence: p,
			}
			err = i.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export <page> [file]",
		Short: "Write a stored page document to a file or stdout.",
		Example: `
restyle export notes
restyle export notes notes.xml
`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return pageCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			e := pages.Export{
				Name:        args[0],
				Persistence: p,
				Out:         cmd.OutOrStdout(),
			}
			if len(args) == 2 {
				e.File = args[1]
			}
			err = e.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <page>",
		Aliases: []string{"rm"},
		Short:   "Delete a stored page.",
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
			d := pages.Delete{Name: args[0], Persistence: p}
			err = d.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
