package page

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/restyle/pkg/style"
)

const selectedAll = "all"

type xmlPage struct {
	XMLName    xml.Name       `xml:"page"`
	Title      string         `xml:"title,attr,omitempty"`
	Paragraphs []xmlParagraph `xml:"p"`
}

type xmlParagraph struct {
	Style       string   `xml:"style,attr,omitempty"`
	SpaceBefore string   `xml:"spaceBefore,attr,omitempty"`
	SpaceAfter  string   `xml:"spaceAfter,attr,omitempty"`
	Runs        []xmlRun `xml:"t"`
}

// xmlRun decodes by hand so an empty CDATA section can be told apart from a
// run with no payload; it encodes its payload through innerxml so an empty
// payload still produces a CDATA section.
type xmlRun struct {
	Selected string `xml:"selected,attr,omitempty"`
	Style    string `xml:"style,attr,omitempty"`
	Inner    string `xml:",innerxml"`

	text    string
	present bool
}

func (r *xmlRun) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "selected":
			r.Selected = a.Value
		case "style":
			r.Style = a.Value
		}
	}
	var b strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			r.present = true
			b.Write(t)
		case xml.StartElement:
			return fmt.Errorf("page: unexpected <%s> inside run", t.Name.Local)
		case xml.EndElement:
			r.text = b.String()
			return nil
		}
	}
}

// Decode reads a page document.
func Decode(r io.Reader) (*Page, error) {
	var doc xmlPage
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("page: decode: %w", err)
	}
	pg := &Page{Title: doc.Title, Paragraphs: make([]*Paragraph, 0, len(doc.Paragraphs))}
	for pi, xp := range doc.Paragraphs {
		ps, err := style.ParseCSS(xp.Style)
		if err != nil {
			return nil, fmt.Errorf("page: paragraph %d: %w", pi, err)
		}
		para := &Paragraph{
			Style:       ps,
			SpaceBefore: xp.SpaceBefore,
			SpaceAfter:  xp.SpaceAfter,
			runs:        make([]Run, 0, len(xp.Runs)),
		}
		for ri, xr := range xp.Runs {
			rs, err := style.ParseCSS(xr.Style)
			if err != nil {
				return nil, fmt.Errorf("page: run %d:%d: %w", pi, ri, err)
			}
			run := Run{Text: xr.text, NoText: !xr.present, Style: rs}
			if strings.EqualFold(xr.Selected, selectedAll) {
				run.Marker = All
			}
			para.runs = append(para.runs, run)
		}
		pg.Paragraphs = append(pg.Paragraphs, para)
	}
	return pg, nil
}

// DecodeString is Decode over a string.
func DecodeString(s string) (*Page, error) {
	return Decode(strings.NewReader(s))
}

// Encode writes pg as an indented page document.
func Encode(w io.Writer, pg *Page) error {
	doc := xmlPage{Title: pg.Title, Paragraphs: make([]xmlParagraph, 0, len(pg.Paragraphs))}
	for _, para := range pg.Paragraphs {
		if para == nil {
			continue
		}
		xp := xmlParagraph{
			Style:       para.Style.CSS(),
			SpaceBefore: para.SpaceBefore,
			SpaceAfter:  para.SpaceAfter,
			Runs:        make([]xmlRun, 0, len(para.runs)),
		}
		for _, r := range para.runs {
			xr := xmlRun{Style: r.Style.CSS()}
			if r.Marker == All {
				xr.Selected = selectedAll
			}
			if !r.NoText {
				xr.Inner = cdata(r.Text)
			}
			xp.Runs = append(xp.Runs, xr)
		}
		doc.Paragraphs = append(doc.Paragraphs, xp)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("page: encode: %w", err)
	}
	if err := enc.Flush(); err != nil {
		return fmt.Errorf("page: encode: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Marshal encodes pg into a byte slice.
func Marshal(pg *Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, pg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// cdata wraps s in a CDATA section, splitting any "]]>" it contains.
func cdata(s string) string {
	return "<![CDATA[" + strings.ReplaceAll(s, "]]>", "]]]]><![CDATA[>") + "]]>"
}
