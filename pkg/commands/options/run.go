package options

import (
	"github.com/spf13/cobra"
)

// RunOptions
type RunOptions struct {
	DryRun  bool
	Verbose bool
}

func AddRunArgs(cmd *cobra.Command, o *RunOptions) {
	cmd.Flags().BoolVarP(&o.DryRun, "dry-run", "n", false,
		"Show the result without saving the page.")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log every styling decision.")
}
