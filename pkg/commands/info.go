package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/restyle/pkg/runner/info"
	"tableflip.dev/restyle/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the store and where it lives.",
		Example: `
restyle info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			p, err := store.Load(cfg)
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config:      cfg,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
