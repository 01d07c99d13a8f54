// Package styles lists and edits the style catalog.
package styles

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/restyle/pkg/catalog"
	"tableflip.dev/restyle/pkg/printers"
	"tableflip.dev/restyle/pkg/store"
	"tableflip.dev/restyle/pkg/style"
)

// Styles prints the catalog after applying at most one edit.
type Styles struct {
	// Reset replaces the stored catalog with the built-in one.
	Reset bool
	// Add, when set, is added to the catalog or replaces the style of the
	// same name.
	Add *style.Descriptor
	// Remove names a style to delete.
	Remove string

	Persistence store.Persistence
	Out         io.Writer
}

func (s *Styles) Do(_ context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not list styles, no persistence")
	}

	var c *catalog.Catalog
	switch {
	case s.Reset:
		c = catalog.Default()
	default:
		var err error
		if c, err = s.Persistence.Catalog(); err != nil {
			return err
		}
	}

	dirty := s.Reset
	if s.Add != nil {
		if _, err := c.Add(*s.Add); err != nil {
			return err
		}
		dirty = true
	}
	if s.Remove != "" {
		if err := c.Remove(s.Remove); err != nil {
			return err
		}
		dirty = true
	}
	if dirty {
		if err := s.Persistence.StoreCatalog(c); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{Out: s.Out}
	pp.Styles(c)
	return nil
}
