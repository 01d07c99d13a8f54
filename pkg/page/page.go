// Package page holds the paragraph/run tree of a note page.
//
// Runs live in an arena owned by their paragraph and are addressed by index.
// Insert, Remove and Replace are the only ways to change a paragraph, so there
// are no parent or sibling pointers to keep consistent.
package page

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/restyle/pkg/style"
)

// ErrIndexOutOfRange is returned by the splice primitives for a bad index.
var ErrIndexOutOfRange = errors.New("page: index out of range")

// Marker is the per-run selection flag set by whoever produced the page.
type Marker int

const (
	// None means no part of the run is selected.
	None Marker = iota
	// All means the whole run is selected. On an empty run it marks the cursor.
	All
)

func (m Marker) String() string {
	if m == All {
		return "all"
	}
	return "none"
}

// Run is the smallest unit of text.
type Run struct {
	Text string
	// NoText is set by the decoder when the run element carried no payload
	// at all, which is different from an empty payload.
	NoText bool
	Marker Marker
	Style  style.Attributes
}

// Paragraph is an ordered sequence of runs plus paragraph level attributes.
type Paragraph struct {
	Style       style.Attributes
	SpaceBefore string
	SpaceAfter  string

	runs []Run
}

// NewParagraph returns a paragraph holding runs in order.
func NewParagraph(runs ...Run) *Paragraph {
	return &Paragraph{runs: append([]Run(nil), runs...)}
}

// Len is the number of runs.
func (p *Paragraph) Len() int {
	return len(p.runs)
}

// At returns the run at i.
func (p *Paragraph) At(i int) (Run, bool) {
	if i < 0 || i >= len(p.runs) {
		return Run{}, false
	}
	return p.runs[i], true
}

// Runs returns a copy of the run sequence.
func (p *Paragraph) Runs() []Run {
	return append([]Run(nil), p.runs...)
}

// Insert places r before index i; i == Len() appends.
func (p *Paragraph) Insert(i int, r Run) error {
	if i < 0 || i > len(p.runs) {
		return fmt.Errorf("%w: insert at %d of %d", ErrIndexOutOfRange, i, len(p.runs))
	}
	p.runs = append(p.runs, Run{})
	copy(p.runs[i+1:], p.runs[i:])
	p.runs[i] = r
	return nil
}

// Remove deletes the run at i and returns it.
func (p *Paragraph) Remove(i int) (Run, error) {
	if i < 0 || i >= len(p.runs) {
		return Run{}, fmt.Errorf("%w: remove at %d of %d", ErrIndexOutOfRange, i, len(p.runs))
	}
	r := p.runs[i]
	p.runs = append(p.runs[:i], p.runs[i+1:]...)
	return r, nil
}

// Replace overwrites the run at i.
func (p *Paragraph) Replace(i int, r Run) error {
	if i < 0 || i >= len(p.runs) {
		return fmt.Errorf("%w: replace at %d of %d", ErrIndexOutOfRange, i, len(p.runs))
	}
	p.runs[i] = r
	return nil
}

// Text concatenates the text of every run.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Page is the tree handed in and out of a restyle command.
type Page struct {
	Title      string
	Paragraphs []*Paragraph
}

// Paragraph returns the paragraph at i or nil.
func (pg *Page) Paragraph(i int) *Paragraph {
	if i < 0 || i >= len(pg.Paragraphs) {
		return nil
	}
	return pg.Paragraphs[i]
}

// Selected collects every run marked All.
func (pg *Page) Selected() Selection {
	var refs []RunRef
	for pi, para := range pg.Paragraphs {
		if para == nil {
			continue
		}
		for ri, r := range para.runs {
			if r.Marker == All {
				refs = append(refs, RunRef{Paragraph: pi, Run: ri})
			}
		}
	}
	return NewSelection(refs...)
}

// ClearSelection resets every run marker to None.
func (pg *Page) ClearSelection() {
	for _, para := range pg.Paragraphs {
		if para == nil {
			continue
		}
		for i := range para.runs {
			para.runs[i].Marker = None
		}
	}
}

// Select marks the runs named by sel, leaving other markers as they are.
// Refs that do not name a run are ignored.
func (pg *Page) Select(sel Selection) {
	for _, ref := range sel.Refs() {
		para := pg.Paragraph(ref.Paragraph)
		if para == nil || ref.Run < 0 || ref.Run >= len(para.runs) {
			continue
		}
		para.runs[ref.Run].Marker = All
	}
}
