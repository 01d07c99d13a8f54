package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/restyle/pkg/commands/options"
	"tableflip.dev/restyle/pkg/printers"
)

var (
	output = &options.OutputOptions{}
	colors = &options.ColorOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "restyle",
		Short: base.Wrap80("Apply catalog styles to the selected runs of a rich-text page."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return printers.ConfigureColor(string(colors.Mode))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	options.AddColorArgs(cmd, colors)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addApply(topLevel)
	addStyles(topLevel)
	addShow(topLevel)
	addPages(topLevel)
	addImport(topLevel)
	addExport(topLevel)
	addDelete(topLevel)
	addInfo(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
