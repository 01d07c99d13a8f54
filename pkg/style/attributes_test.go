package style

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSS(t *testing.T) {
	a, err := ParseCSS("font-family:'Segoe UI'; font-size:11.0pt;COLOR:#FF0000;background:automatic;" +
		"font-weight:bold;text-decoration:underline line-through;vertical-align:super;mso-x:1")
	require.NoError(t, err)

	assert.Equal(t, "Segoe UI", a.FontFamily)
	assert.Equal(t, "11.0pt", a.FontSize)
	assert.Equal(t, "#ff0000", a.Color)
	assert.Empty(t, a.Highlight)
	assert.True(t, a.Bold)
	assert.False(t, a.Italic)
	assert.True(t, a.Underline)
	assert.True(t, a.Strikethrough)
	assert.True(t, a.Superscript)
	assert.Equal(t, []Property{{Name: "mso-x", Value: "1"}}, a.Extra)
}

func TestParseCSSKeepsUnmodelledValues(t *testing.T) {
	a, err := ParseCSS("font-weight:600;font-style:normal;text-decoration:none;vertical-align:baseline")
	require.NoError(t, err)

	assert.False(t, a.Bold)
	assert.False(t, a.Italic)
	assert.False(t, a.Underline)
	assert.False(t, a.Superscript)
	assert.False(t, a.IsZero())
	assert.Equal(t, "font-style:normal;font-weight:600;text-decoration:none;vertical-align:baseline", a.CSS())

	// A later modelled value replaces the kept one.
	a, err = ParseCSS("font-weight:600;font-weight:bold;text-decoration:underline blink")
	require.NoError(t, err)
	assert.True(t, a.Bold)
	assert.False(t, a.Underline)
	assert.Equal(t, "font-weight:bold;text-decoration:underline blink", a.CSS())
}

func TestParseCSSMalformed(t *testing.T) {
	_, err := ParseCSS("font-weight")
	assert.Error(t, err)
}

func TestCSSOrder(t *testing.T) {
	a := Attributes{
		Italic:     true,
		Color:      "#0000ff",
		FontFamily: "Consolas",
		Extra:      []Property{{Name: "z", Value: "1"}, {Name: "a", Value: "2"}},
	}
	assert.Equal(t, "font-family:Consolas;color:#0000ff;font-style:italic;a:2;z:1", a.CSS())
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "#aabbcc", NormalizeColor("#ABC"))
	assert.Equal(t, "", NormalizeColor("Automatic"))
	assert.Equal(t, "red", NormalizeColor("Red"))
}

func TestColorHelpers(t *testing.T) {
	a := MustParseCSS("font-weight:bold;color:#ff0000;background:#ffff00")
	assert.True(t, a.HasColors())

	plain := a.WithoutColors()
	assert.False(t, plain.HasColors())
	assert.True(t, plain.Bold)
	assert.True(t, a.HasColors(), "WithoutColors must not modify the receiver")

	only := a.ColorsOnly()
	assert.Equal(t, "color:#ff0000;background:#ffff00", only.CSS())

	var merged Attributes
	merged.Bold = true
	merged.MergeColorsFrom(only)
	assert.Equal(t, "color:#ff0000;background:#ffff00;font-weight:bold", merged.CSS())

	merged.MergeColorsFrom(Attributes{})
	assert.False(t, merged.HasColors())
}

func TestCloneDoesNotShareExtra(t *testing.T) {
	a := Attributes{Extra: []Property{{Name: "x", Value: "1"}}}
	b := a.Clone()
	b.Extra[0].Value = "2"
	assert.Equal(t, "1", a.Extra[0].Value)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Attributes{}.IsZero())
	assert.False(t, Attributes{Subscript: true}.IsZero())
	assert.False(t, Attributes{Extra: []Property{{Name: "x", Value: "y"}}}.IsZero())
}

func TestDescriptorJSON(t *testing.T) {
	d := Descriptor{
		Name:        "Code",
		Kind:        Character,
		Attributes:  MustParseCSS("font-family:Consolas;color:#2e75b5"),
		ApplyColors: true,
	}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Code","kind":"character","style":"font-family:Consolas;color:#2e75b5","applyColors":true}`, string(b))

	var back Descriptor
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, d.Kind, back.Kind)
	assert.True(t, d.Attributes.Equal(back.Attributes))
}

func TestDescriptorValidate(t *testing.T) {
	d := Descriptor{Name: "Heading", SpaceBefore: "12", SpaceAfter: ""}
	require.NoError(t, d.Validate())
	assert.Equal(t, "12.0", d.SpaceBefore)
	assert.Equal(t, "0.0", d.SpaceAfter)

	bad := Descriptor{Name: "Bad", SpaceAfter: "lots"}
	assert.Error(t, bad.Validate())

	assert.Error(t, (&Descriptor{}).Validate())
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Character")
	require.NoError(t, err)
	assert.Equal(t, Character, k)

	k, err = ParseKind("paragraph")
	require.NoError(t, err)
	assert.Equal(t, Paragraph, k)

	_, err = ParseKind("table")
	assert.Error(t, err)
}
