package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/restyle/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		fmt.Fprintln(out, store.ConfigPathEnv, "found on env, using", override)
	} else {
		fmt.Fprintln(out, store.ConfigPathEnv, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if file := store.ConfigFile(n.Config); file != "" {
		fmt.Fprintln(out, "Config.file:", file)
	}
	fmt.Fprintln(out, "Config.path:", n.Config.BasePath())

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	fmt.Fprintf(out, "Pages:\n")
	pages := n.Persistence.Pages(ctx, "")
	for _, k := range pages {
		fmt.Fprintf(out, "  %s\n", k)
	}
	if len(pages) == 0 {
		fmt.Fprintf(out, "  %s\n", "no pages")
	}

	c, err := n.Persistence.Catalog()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Styles: %d\n", c.Len())
	return nil
}
