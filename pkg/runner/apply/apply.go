// Package apply runs a catalog style against a stored page.
package apply

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"tableflip.dev/restyle/pkg/page"
	"tableflip.dev/restyle/pkg/printers"
	"tableflip.dev/restyle/pkg/splice"
	"tableflip.dev/restyle/pkg/store"
)

// Apply fetches Page, styles its selection with Style and commits the page
// only when something was styled.
type Apply struct {
	Page  string
	Style string
	// Selection, when set, replaces the markers stored in the page.
	Selection      string
	ClearSelection bool
	DryRun         bool
	Verbose        bool

	Persistence store.Persistence
	Out         io.Writer

	// Applied reports whether the last Do styled anything.
	Applied bool
}

func (a *Apply) Do(ctx context.Context) error {
	a.Applied = false
	if a.Persistence == nil {
		return errors.New("can not apply, no persistence")
	}

	pg, err := a.Persistence.Page(a.Page)
	if err != nil {
		return err
	}
	cat, err := a.Persistence.Catalog()
	if err != nil {
		return err
	}
	d, err := cat.Resolve(a.Style)
	if err != nil {
		return err
	}

	sel := pg.Selected()
	if a.Selection != "" {
		if sel, err = page.ParseSelection(a.Selection); err != nil {
			return err
		}
		pg.ClearSelection()
		pg.Select(sel)
	}

	s := &splice.Splicer{}
	if a.Verbose {
		s.Logf = log.Printf
	}
	ok, err := s.ApplyStyle(pg, sel, d)
	if err != nil {
		return fmt.Errorf("apply %q to %q: %w", d.Name, a.Page, err)
	}

	pp := printers.PrettyPrint{Out: a.Out}
	if !ok {
		pp.Info("nothing selected on %q, page left unchanged", a.Page)
		return nil
	}
	a.Applied = true

	if a.ClearSelection {
		pg.ClearSelection()
	}
	if a.DryRun {
		pp.Info("dry run, %q not saved", a.Page)
		pp.Page(pg)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := a.Persistence.StorePage(a.Page, pg); err != nil {
		return err
	}
	pp.Info("applied %s style %q to %d run(s) of %q", d.Kind, d.Name, sel.Len(), a.Page)
	pp.Page(pg)
	return nil
}
