// Package printers renders pages and the style catalog to a terminal.
package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-isatty"

	"tableflip.dev/restyle/pkg/style"
)

// ConfigureColor applies a --color mode: auto, always or never.
func ConfigureColor(mode string) error {
	switch strings.ToLower(mode) {
	case "", "auto":
		fd := os.Stdout.Fd()
		color.NoColor = !(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) || os.Getenv("NO_COLOR") != ""
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		return fmt.Errorf("printers: unknown color mode %q", mode)
	}
	return nil
}

type ansiColor struct {
	fg, bg color.Attribute
	c      colorful.Color
}

var palette = func() []ansiColor {
	entries := []struct {
		fg, bg color.Attribute
		hex    string
	}{
		{color.FgBlack, color.BgBlack, "#000000"},
		{color.FgRed, color.BgRed, "#aa0000"},
		{color.FgGreen, color.BgGreen, "#00aa00"},
		{color.FgYellow, color.BgYellow, "#aa5500"},
		{color.FgBlue, color.BgBlue, "#0000aa"},
		{color.FgMagenta, color.BgMagenta, "#aa00aa"},
		{color.FgCyan, color.BgCyan, "#00aaaa"},
		{color.FgWhite, color.BgWhite, "#aaaaaa"},
		{color.FgHiBlack, color.BgHiBlack, "#555555"},
		{color.FgHiRed, color.BgHiRed, "#ff5555"},
		{color.FgHiGreen, color.BgHiGreen, "#55ff55"},
		{color.FgHiYellow, color.BgHiYellow, "#ffff55"},
		{color.FgHiBlue, color.BgHiBlue, "#5555ff"},
		{color.FgHiMagenta, color.BgHiMagenta, "#ff55ff"},
		{color.FgHiCyan, color.BgHiCyan, "#55ffff"},
		{color.FgHiWhite, color.BgHiWhite, "#ffffff"},
	}
	out := make([]ansiColor, len(entries))
	for i, e := range entries {
		c, _ := colorful.Hex(e.hex)
		out[i] = ansiColor{fg: e.fg, bg: e.bg, c: c}
	}
	return out
}()

// nearest picks the palette entry closest to hex in Lab space.
func nearest(hex string) (ansiColor, bool) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return ansiColor{}, false
	}
	best, dist := palette[0], c.DistanceLab(palette[0].c)
	for _, p := range palette[1:] {
		if d := c.DistanceLab(p.c); d < dist {
			best, dist = p, d
		}
	}
	return best, true
}

// terminalAttributes maps a run style, falling back to its paragraph style
// for colors, onto terminal attributes.
func terminalAttributes(para, run style.Attributes) []color.Attribute {
	var attrs []color.Attribute
	fg, bg := run.Color, run.Highlight
	if fg == "" {
		fg = para.Color
	}
	if bg == "" {
		bg = para.Highlight
	}
	if a, ok := nearest(fg); ok {
		attrs = append(attrs, a.fg)
	}
	if a, ok := nearest(bg); ok {
		attrs = append(attrs, a.bg)
	}
	if run.Bold || para.Bold {
		attrs = append(attrs, color.Bold)
	}
	if run.Italic || para.Italic {
		attrs = append(attrs, color.Italic)
	}
	if run.Underline {
		attrs = append(attrs, color.Underline)
	}
	if run.Strikethrough {
		attrs = append(attrs, color.CrossedOut)
	}
	if run.Superscript || run.Subscript {
		attrs = append(attrs, color.Faint)
	}
	return attrs
}
