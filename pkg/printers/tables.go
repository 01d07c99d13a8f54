package printers

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/rivo/uniseg"

	"tableflip.dev/restyle/pkg/catalog"
	"tableflip.dev/restyle/pkg/page"
	"tableflip.dev/restyle/pkg/style"
)

// Styles renders the catalog with a sample of each style.
func (pp *PrettyPrint) Styles(c *catalog.Catalog) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Name"), bold.Sprint("Kind"),
		bold.Sprint("Colors"), bold.Sprint("Spacing"), bold.Sprint("Style"))
	for i, d := range c.All() {
		sample := color.New(terminalAttributes(d.Attributes, d.Attributes)...).Sprint(d.Name)
		colors := "keep"
		if d.ApplyColors {
			colors = "apply"
		}
		spacing := ""
		if d.Kind == style.Paragraph {
			spacing = d.SpaceBefore + "/" + d.SpaceAfter
		}
		tbl.AddRow(strconv.Itoa(i), sample, d.Kind, colors, spacing, d.CSS())
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.Writer(), tbl)
}

// Runs renders one row per run, listing its ref, length in graphemes,
// selection marker and style.
func (pp *PrettyPrint) Runs(pg *page.Page) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("Run"), bold.Sprint("Len"), bold.Sprint("Selected"),
		bold.Sprint("Text"), bold.Sprint("Style"))
	for pi, para := range pg.Paragraphs {
		if para == nil {
			continue
		}
		for ri, r := range para.Runs() {
			ref := page.RunRef{Paragraph: pi, Run: ri}
			text := strconv.Quote(r.Text)
			if r.NoText {
				text = "-"
			}
			tbl.AddRow(ref, uniseg.GraphemeClusterCount(r.Text), r.Marker, text, r.Style.CSS())
		}
	}
	tbl.RightAlign(1)

	_, _ = fmt.Fprintln(pp.Writer(), tbl)
}
