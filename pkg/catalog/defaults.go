package catalog

import "tableflip.dev/restyle/pkg/style"

// Default returns the built-in styles.
func Default() *Catalog {
	c, err := New(
		style.Descriptor{
			Name:        "Heading 1",
			Kind:        style.Paragraph,
			Attributes:  style.MustParseCSS("font-family:Calibri;font-size:16.0pt;color:#1e4e79;font-weight:bold"),
			ApplyColors: true,
			SpaceBefore: "12.0",
			SpaceAfter:  "6.0",
		},
		style.Descriptor{
			Name:        "Heading 2",
			Kind:        style.Paragraph,
			Attributes:  style.MustParseCSS("font-family:Calibri;font-size:14.0pt;color:#2e75b5;font-weight:bold"),
			ApplyColors: true,
			SpaceBefore: "9.0",
			SpaceAfter:  "3.0",
		},
		style.Descriptor{
			Name:        "Heading 3",
			Kind:        style.Paragraph,
			Attributes:  style.MustParseCSS("font-family:Calibri;font-size:12.0pt;color:#5b9bd5;font-weight:bold"),
			ApplyColors: true,
			SpaceBefore: "6.0",
			SpaceAfter:  "3.0",
		},
		style.Descriptor{
			Name:       "Normal",
			Kind:       style.Paragraph,
			Attributes: style.MustParseCSS("font-family:Calibri;font-size:11.0pt"),
		},
		style.Descriptor{
			Name:        "Quote",
			Kind:        style.Paragraph,
			Attributes:  style.MustParseCSS("font-family:Georgia;font-size:11.0pt;color:#595959;font-style:italic"),
			SpaceBefore: "6.0",
			SpaceAfter:  "6.0",
		},
		style.Descriptor{
			Name:        "Code",
			Kind:        style.Character,
			Attributes:  style.MustParseCSS("font-family:Consolas;font-size:10.0pt;color:#2e75b5"),
			ApplyColors: true,
		},
		style.Descriptor{
			Name:       "Emphasis",
			Kind:       style.Character,
			Attributes: style.MustParseCSS("font-style:italic"),
		},
		style.Descriptor{
			Name:        "Highlight",
			Kind:        style.Character,
			Attributes:  style.MustParseCSS("background:#ffff00"),
			ApplyColors: true,
		},
		style.Descriptor{
			Name:        "Citation",
			Kind:        style.Character,
			Attributes:  style.MustParseCSS("font-size:9.0pt;color:#595959;vertical-align:super"),
			ApplyColors: true,
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}
