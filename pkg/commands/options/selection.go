package options

import (
	"github.com/spf13/cobra"
)

// SelectionOptions
type SelectionOptions struct {
	Selection string
	Clear     bool
}

func AddSelectionArgs(cmd *cobra.Command, o *SelectionOptions) {
	cmd.Flags().StringVar(&o.Selection, "selection", "",
		`Runs to style, replacing the page's selection markers, as paragraph:run pairs, example: --selection="0:1,2:0".`)
	cmd.Flags().BoolVar(&o.Clear, "clear-selection", false,
		"Clear the selection markers before saving.")
}
