package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/restyle/pkg/page"
)

// cursorGlyph marks a zero-length selection.
const cursorGlyph = "│"

// PrettyPrint renders pages and catalogs for a terminal.
type PrettyPrint struct {
	Out   io.Writer
	Width int
}

// Writer is Out, or color.Output when Out is unset.
func (pp *PrettyPrint) Writer() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.Writer(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.Writer(), title)
}

// Info prints a faint informational line.
func (pp *PrettyPrint) Info(format string, args ...interface{}) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.Writer(), format+"\n", args...)
}

// Page renders every paragraph with its runs styled as closely as the
// terminal allows. Selected runs are shown in reverse video.
func (pp *PrettyPrint) Page(pg *page.Page) {
	if pg.Title != "" {
		pp.Title(pg.Title)
	}
	if len(pg.Paragraphs) == 0 {
		pp.Info(" empty page")
		pp.NewLine()
		return
	}

	n := color.New(color.Faint)
	for i, para := range pg.Paragraphs {
		if para == nil {
			continue
		}
		var b strings.Builder
		for _, r := range para.Runs() {
			attrs := terminalAttributes(para.Style, r.Style)
			switch {
			case r.Marker == page.All && r.Text == "":
				attrs = append(attrs, color.BlinkSlow)
				b.WriteString(color.New(attrs...).Sprint(cursorGlyph))
			case r.Marker == page.All:
				attrs = append(attrs, color.ReverseVideo)
				b.WriteString(color.New(attrs...).Sprint(r.Text))
			case len(attrs) > 0:
				b.WriteString(color.New(attrs...).Sprint(r.Text))
			default:
				b.WriteString(r.Text)
			}
		}
		text := b.String()
		if pp.Width > 0 {
			text = wordwrap.String(text, pp.Width)
		}
		_, _ = n.Fprintf(pp.Writer(), "%3d ", i)
		_, _ = fmt.Fprintln(pp.Writer(), strings.ReplaceAll(text, "\n", "\n    "))
	}
	pp.NewLine()
}
