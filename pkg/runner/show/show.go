// Package show renders a stored page.
package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/restyle/pkg/printers"
	"tableflip.dev/restyle/pkg/store"
)

type Show struct {
	Page  string
	Runs  bool
	Width int

	Persistence store.Persistence
	Out         io.Writer
}

func (s *Show) Do(_ context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not show, no persistence")
	}
	pg, err := s.Persistence.Page(s.Page)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: s.Out, Width: s.Width}
	if s.Runs {
		pp.Runs(pg)
		return nil
	}
	pp.Page(pg)
	return nil
}
