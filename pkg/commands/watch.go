package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/restyle/pkg/runner/watch"
	"tableflip.dev/restyle/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Report page and catalog changes as they land in the store.",
		Example: `
restyle watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			w := watch.Watch{Persistence: p}
			err = w.Do(ctx)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
