// Package style models the inline and paragraph style records carried by page
// paragraphs and runs, and the descriptors applied to them.
package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Property is a persisted style declaration restyle does not model itself. It is
// carried through untouched so host specific declarations survive a rewrite.
type Property struct {
	Name  string
	Value string
}

// Attributes is a structured style record. The zero value means "no style".
type Attributes struct {
	FontFamily    string
	FontSize      string
	Color         string
	Highlight     string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Superscript   bool
	Subscript     bool

	Extra []Property
}

// ParseCSS reads the persisted `name:value;name:value` form.
func ParseCSS(css string) (Attributes, error) {
	var a Attributes
	for _, decl := range strings.Split(css, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			return Attributes{}, fmt.Errorf("style: malformed declaration %q", decl)
		}
		name = strings.ToLower(strings.TrimSpace(name))
		value = strings.TrimSpace(value)
		a.set(name, value)
	}
	return a, nil
}

// MustParseCSS parses the input and panics on error. Intended for tests/defaults.
func MustParseCSS(css string) Attributes {
	a, err := ParseCSS(css)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Attributes) set(name, value string) {
	switch name {
	case "font-family":
		a.FontFamily = strings.Trim(value, `'"`)
	case "font-size":
		a.FontSize = value
	case "color":
		a.Color = NormalizeColor(value)
	case "background", "background-color":
		a.Highlight = NormalizeColor(value)
	case "font-weight":
		a.Bold = strings.EqualFold(value, "bold")
		a.keep(name, value, a.Bold)
	case "font-style":
		a.Italic = strings.EqualFold(value, "italic")
		a.keep(name, value, a.Italic)
	case "text-decoration":
		a.Underline, a.Strikethrough = false, false
		modelled := value != ""
		for _, v := range strings.Fields(strings.ToLower(value)) {
			switch v {
			case "underline":
				a.Underline = true
			case "line-through":
				a.Strikethrough = true
			default:
				modelled = false
			}
		}
		if !modelled {
			a.Underline, a.Strikethrough = false, false
		}
		a.keep(name, value, modelled)
	case "vertical-align":
		v := strings.ToLower(value)
		a.Superscript = v == "super"
		a.Subscript = v == "sub"
		a.keep(name, value, a.Superscript || a.Subscript)
	default:
		a.keep(name, value, false)
	}
}

// keep records name as an extra declaration unless its value is already
// represented by a flag. A flag and an extra never share a name.
func (a *Attributes) keep(name, value string, modelled bool) {
	for i := range a.Extra {
		if a.Extra[i].Name != name {
			continue
		}
		if modelled {
			a.Extra = append(a.Extra[:i], a.Extra[i+1:]...)
		} else {
			a.Extra[i].Value = value
		}
		return
	}
	if !modelled {
		a.Extra = append(a.Extra, Property{Name: name, Value: value})
	}
}

// NormalizeColor returns colors as lower case #rrggbb. "automatic" and empty
// values mean no color. Values that are not hex colors are kept as written.
func NormalizeColor(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "automatic" {
		return ""
	}
	c, err := colorful.Hex(value)
	if err != nil {
		return value
	}
	return c.Hex()
}

// CSS renders the persisted form. Known declarations come first in a fixed
// order, unknown ones follow sorted by name.
func (a Attributes) CSS() string {
	var decls []string
	add := func(name, value string) {
		decls = append(decls, name+":"+value)
	}
	if a.FontFamily != "" {
		add("font-family", a.FontFamily)
	}
	if a.FontSize != "" {
		add("font-size", a.FontSize)
	}
	if a.Color != "" {
		add("color", a.Color)
	}
	if a.Highlight != "" {
		add("background", a.Highlight)
	}
	if a.Bold {
		add("font-weight", "bold")
	}
	if a.Italic {
		add("font-style", "italic")
	}
	switch {
	case a.Underline && a.Strikethrough:
		add("text-decoration", "underline line-through")
	case a.Underline:
		add("text-decoration", "underline")
	case a.Strikethrough:
		add("text-decoration", "line-through")
	}
	switch {
	case a.Superscript:
		add("vertical-align", "super")
	case a.Subscript:
		add("vertical-align", "sub")
	}
	extra := append([]Property(nil), a.Extra...)
	sort.SliceStable(extra, func(i, j int) bool {
		return extra[i].Name < extra[j].Name
	})
	for _, p := range extra {
		add(p.Name, p.Value)
	}
	return strings.Join(decls, ";")
}

func (a Attributes) String() string {
	return a.CSS()
}

// IsZero reports whether the record carries no declarations at all.
func (a Attributes) IsZero() bool {
	return a.FontFamily == "" && a.FontSize == "" &&
		!a.HasColors() &&
		!a.Bold && !a.Italic && !a.Underline && !a.Strikethrough &&
		!a.Superscript && !a.Subscript &&
		len(a.Extra) == 0
}

// HasColors reports whether a foreground or highlight color is set.
func (a Attributes) HasColors() bool {
	return a.Color != "" || a.Highlight != ""
}

// Equal compares two records declaration by declaration.
func (a Attributes) Equal(b Attributes) bool {
	return a.CSS() == b.CSS()
}

// Clone returns a copy that shares no memory with a.
func (a Attributes) Clone() Attributes {
	a.Extra = append([]Property(nil), a.Extra...)
	if len(a.Extra) == 0 {
		a.Extra = nil
	}
	return a
}

// WithoutColors returns a copy with color and highlight removed.
func (a Attributes) WithoutColors() Attributes {
	out := a.Clone()
	out.Color = ""
	out.Highlight = ""
	return out
}

// ColorsOnly returns a record holding only the color and highlight of a.
func (a Attributes) ColorsOnly() Attributes {
	return Attributes{Color: a.Color, Highlight: a.Highlight}
}

// MergeColorsFrom replaces the colors of a with those of other, including
// their absence.
func (a *Attributes) MergeColorsFrom(other Attributes) {
	a.Color = other.Color
	a.Highlight = other.Highlight
}

// MarshalText implements encoding.TextMarshaler using the persisted form.
func (a Attributes) MarshalText() ([]byte, error) {
	return []byte(a.CSS()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the persisted form.
func (a *Attributes) UnmarshalText(text []byte) error {
	parsed, err := ParseCSS(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
