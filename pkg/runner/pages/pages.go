// Package pages moves page documents in and out of the store.
package pages

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"tableflip.dev/restyle/pkg/page"
	"tableflip.dev/restyle/pkg/printers"
	"tableflip.dev/restyle/pkg/store"
)

// List prints stored page names.
type List struct {
	Prefix      string
	Persistence store.Persistence
	Out         io.Writer
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list pages, no persistence")
	}
	pp := printers.PrettyPrint{Out: l.Out}
	names := l.Persistence.Pages(ctx, l.Prefix)
	if len(names) == 0 {
		pp.Info(" no pages")
		return nil
	}
	pp.Title("Pages")
	for _, name := range names {
		_, _ = fmt.Fprintf(pp.Writer(), "  %s\n", name)
	}
	return nil
}

// Import decodes a page document from File ("-" for In) and stores it.
type Import struct {
	Name string
	File string
	In   io.Reader

	Persistence store.Persistence
	Out         io.Writer
}

func (i *Import) Do(_ context.Context) error {
	if i.Persistence == nil {
		return errors.New("can not import, no persistence")
	}
	r := i.In
	if i.File != "-" {
		f, err := os.Open(i.File)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if r == nil {
		return errors.New("import: no input")
	}
	pg, err := page.Decode(r)
	if err != nil {
		return err
	}
	if err := i.Persistence.StorePage(i.Name, pg); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: i.Out}
	pp.Info("imported %q: %d paragraph(s), %d selected run(s)", i.Name, len(pg.Paragraphs), pg.Selected().Len())
	return nil
}

// Export writes a stored page document to File, or Out when File is empty.
type Export struct {
	Name string
	File string

	Persistence store.Persistence
	Out         io.Writer
}

func (e *Export) Do(_ context.Context) error {
	if e.Persistence == nil {
		return errors.New("can not export, no persistence")
	}
	pg, err := e.Persistence.Page(e.Name)
	if err != nil {
		return err
	}
	if e.File == "" {
		w := e.Out
		if w == nil {
			w = os.Stdout
		}
		return page.Encode(w, pg)
	}
	data, err := page.Marshal(pg)
	if err != nil {
		return err
	}
	tmp := e.File + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, e.File); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Delete removes a stored page.
type Delete struct {
	Name        string
	Persistence store.Persistence
	Out         io.Writer
}

func (d *Delete) Do(_ context.Context) error {
	if d.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}
	if err := d.Persistence.DeletePage(d.Name); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: d.Out}
	pp.Info("deleted %q", d.Name)
	return nil
}
