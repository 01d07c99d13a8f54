// Package watch prints store change notifications.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/restyle/pkg/store"
)

type Watch struct {
	Persistence store.Persistence
	Out         io.Writer
	// Now stamps each line; defaults to time.Now.
	Now func() time.Time
}

// Do prints one line per event until ctx is done.
func (w *Watch) Do(ctx context.Context) error {
	if w.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}
	out := w.Out
	if out == nil {
		out = color.Output
	}
	now := w.Now
	if now == nil {
		now = time.Now
	}

	events, err := w.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	faint := color.New(color.Faint)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			_, _ = faint.Fprint(out, now().Format("15:04:05"), " ")
			switch ev.Type {
			case store.EventPageChanged:
				_, _ = fmt.Fprintf(out, "page %q changed\n", ev.Page)
			case store.EventCatalogChanged:
				_, _ = fmt.Fprintln(out, "style catalog changed")
			default:
				_, _ = fmt.Fprintln(out, "store changed")
			}
		}
	}
}
