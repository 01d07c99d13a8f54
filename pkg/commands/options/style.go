package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/restyle/pkg/style"
)

// StyleOptions selects a catalog style by index or name.
type StyleOptions struct {
	Style string
}

func AddStyleArgs(cmd *cobra.Command, o *StyleOptions) {
	cmd.Flags().StringVarP(&o.Style, "style", "s", "",
		`Catalog style to apply, by index or name, example: --style="Heading 1".`)
}

// DefineOptions describe a new catalog style.
type DefineOptions struct {
	Kind        string
	CSS         string
	ApplyColors bool
	SpaceBefore string
	SpaceAfter  string
}

func AddDefineArgs(cmd *cobra.Command, o *DefineOptions) {
	cmd.Flags().StringVarP(&o.Kind, "kind", "k", "character",
		`Style kind, "character" or "paragraph".`)
	cmd.Flags().StringVar(&o.CSS, "css", "",
		`Style declarations, example: --css="font-weight:bold;color:#c00000".`)
	cmd.Flags().BoolVar(&o.ApplyColors, "apply-colors", false,
		"Replace existing colors instead of keeping them.")
	cmd.Flags().StringVar(&o.SpaceBefore, "space-before", "",
		"Paragraph space before, in points.")
	cmd.Flags().StringVar(&o.SpaceAfter, "space-after", "",
		"Paragraph space after, in points.")
}

// Descriptor builds and validates the style named name.
func (o *DefineOptions) Descriptor(name string) (*style.Descriptor, error) {
	if name == "" {
		return nil, errors.New("style name required")
	}
	kind, err := style.ParseKind(o.Kind)
	if err != nil {
		return nil, err
	}
	attrs, err := style.ParseCSS(o.CSS)
	if err != nil {
		return nil, err
	}
	d := &style.Descriptor{
		Name:        name,
		Kind:        kind,
		Attributes:  attrs,
		ApplyColors: o.ApplyColors,
		SpaceBefore: o.SpaceBefore,
		SpaceAfter:  o.SpaceAfter,
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
