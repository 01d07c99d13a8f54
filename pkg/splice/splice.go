// Package splice applies a style descriptor to exactly the selected text of a
// page, splitting and merging runs where a cursor sits inside a word.
package splice

import (
	"errors"
	"fmt"

	"tableflip.dev/restyle/pkg/page"
	"tableflip.dev/restyle/pkg/style"
)

// ErrMalformedTree reports a selection that does not match the tree it was
// produced for. Nothing is modified when it is returned.
var ErrMalformedTree = errors.New("splice: malformed tree")

// Splicer applies styles. The zero value is ready to use.
type Splicer struct {
	// Logf, when set, receives one line per decision taken for a run.
	Logf func(format string, args ...interface{})
}

// ApplyStyle is shorthand for a zero Splicer's ApplyStyle.
func ApplyStyle(pg *page.Page, sel page.Selection, d style.Descriptor) (bool, error) {
	return (&Splicer{}).ApplyStyle(pg, sel, d)
}

// ApplyStyle styles the runs named by sel, mutating pg in place. It reports
// false when sel is empty, in which case pg must not be committed.
func (s *Splicer) ApplyStyle(pg *page.Page, sel page.Selection, d style.Descriptor) (bool, error) {
	if sel.Len() == 0 {
		return false, nil
	}
	if err := validate(pg, sel); err != nil {
		return false, err
	}
	if d.Kind == style.Character {
		return s.stylizeWords(pg, sel, d), nil
	}
	return s.stylizeParagraphs(pg, sel, d), nil
}

func validate(pg *page.Page, sel page.Selection) error {
	for _, ref := range sel.Refs() {
		para := pg.Paragraph(ref.Paragraph)
		if para == nil {
			return fmt.Errorf("%w: %s: no paragraph %d in page of %d",
				ErrMalformedTree, ref, ref.Paragraph, len(pg.Paragraphs))
		}
		run, ok := para.At(ref.Run)
		if !ok {
			return fmt.Errorf("%w: %s: no run %d in paragraph of %d",
				ErrMalformedTree, ref, ref.Run, para.Len())
		}
		if run.NoText {
			return fmt.Errorf("%w: %s: selected run has no payload", ErrMalformedTree, ref)
		}
	}
	return nil
}

func (s *Splicer) logf(format string, args ...interface{}) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

// edit tracks which runs of one paragraph are selected while runs are removed.
type edit struct {
	para     *page.Paragraph
	selected []bool
}

func (e *edit) remove(i int) {
	_, _ = e.para.Remove(i)
	e.selected = append(e.selected[:i], e.selected[i+1:]...)
}

func (e *edit) isSelected(i int) bool {
	return i >= 0 && i < len(e.selected) && e.selected[i]
}

func (s *Splicer) stylizeWords(pg *page.Page, sel page.Selection, d style.Descriptor) bool {
	refs := sel.Refs()
	edits := make(map[int]*edit)
	for _, ref := range refs {
		e, ok := edits[ref.Paragraph]
		if !ok {
			para := pg.Paragraphs[ref.Paragraph]
			e = &edit{para: para, selected: make([]bool, para.Len())}
			edits[ref.Paragraph] = e
		}
		e.selected[ref.Run] = true
	}

	// Work from the end so removing a neighbour never shifts a run that is
	// still waiting to be styled.
	modified := false
	for i := len(refs) - 1; i >= 0; i-- {
		ref := refs[i]
		s.stylizeRun(edits[ref.Paragraph], ref.Paragraph, ref.Run, d)
		modified = true
	}
	return modified
}

func (s *Splicer) stylizeRun(e *edit, pi, i int, d style.Descriptor) {
	run, _ := e.para.At(i)

	if e.para.Len() == 1 {
		s.logf("%d:%d: only run in paragraph, styling directly", pi, i)
		applyCharacter(&run, d)
		_ = e.para.Replace(i, run)
		return
	}

	if run.Text != "" {
		s.logf("%d:%d: selected text %q, styling directly", pi, i, run.Text)
		applyCharacter(&run, d)
		_ = e.para.Replace(i, run)
		return
	}

	// The cursor sits at a point; look for a word running through it.
	prev, hasPrev := e.para.At(i - 1)
	if hasPrev && (e.isSelected(i-1) || endsWithSpace(prev.Text)) {
		hasPrev = false
	}
	next, hasNext := e.para.At(i + 1)
	if hasNext && (e.isSelected(i+1) || startsWithSpace(next.Text)) {
		hasNext = false
	}

	if hasPrev && hasNext {
		rest, head := splitLastWord(prev.Text)
		tail, after := splitFirstWord(next.Text)
		word := head + tail

		if after == "" {
			e.remove(i + 1)
		} else {
			next.Text = after
			_ = e.para.Replace(i+1, next)
		}
		if rest == "" {
			e.remove(i - 1)
			i--
		} else {
			prev.Text = rest
			_ = e.para.Replace(i-1, prev)
		}

		if word != "" {
			s.logf("%d:%d: cursor inside %q, styling the word", pi, i, word)
			run.Text = word
		} else {
			s.logf("%d:%d: neighbours held no word, styling the cursor", pi, i)
		}
	} else {
		s.logf("%d:%d: cursor not inside a word, styling the cursor", pi, i)
	}

	applyCharacter(&run, d)
	_ = e.para.Replace(i, run)
}

// applyCharacter replaces the run style. Without ApplyColors the run keeps
// whatever colors it had.
func applyCharacter(run *page.Run, d style.Descriptor) {
	attrs := d.Attributes.Clone()
	if !d.ApplyColors {
		attrs.MergeColorsFrom(run.Style)
	}
	run.Style = attrs
}

func (s *Splicer) stylizeParagraphs(pg *page.Page, sel page.Selection, d style.Descriptor) bool {
	seen := make(map[int]bool)
	modified := false
	for _, ref := range sel.Refs() {
		if seen[ref.Paragraph] {
			continue
		}
		seen[ref.Paragraph] = true

		para := pg.Paragraphs[ref.Paragraph]
		clearStyles(para, d.ApplyColors)

		if para.Style.IsZero() {
			s.logf("%d: attaching %q", ref.Paragraph, d.Name)
			para.Style = d.Attributes.Clone()
		} else {
			// Only colors survive clearStyles, and only without ApplyColors.
			s.logf("%d: merging %q into existing colors", ref.Paragraph, d.Name)
			merged := d.Attributes.Clone()
			if !d.ApplyColors {
				merged.MergeColorsFrom(para.Style)
			}
			para.Style = merged
		}

		para.SpaceBefore = d.SpaceBefore
		para.SpaceAfter = d.SpaceAfter
		modified = true
	}
	return modified
}

// clearStyles strips the style of a paragraph and its runs. With clearColors unset
// the colors are kept.
func clearStyles(para *page.Paragraph, clearColors bool) {
	strip := func(a style.Attributes) style.Attributes {
		if clearColors {
			return style.Attributes{}
		}
		return a.ColorsOnly()
	}
	para.Style = strip(para.Style)
	for i := 0; i < para.Len(); i++ {
		run, _ := para.At(i)
		run.Style = strip(run.Style)
		_ = para.Replace(i, run)
	}
}
