package options

import (
	"github.com/spf13/cobra"
)

// ShowOptions
type ShowOptions struct {
	Runs  bool
	Width int
}

func AddShowArgs(cmd *cobra.Command, o *ShowOptions) {
	cmd.Flags().BoolVarP(&o.Runs, "runs", "r", false,
		"List every run with its selection marker and style.")
	cmd.Flags().IntVarP(&o.Width, "width", "w", 80,
		"Wrap paragraphs at this width, 0 disables wrapping.")
}
