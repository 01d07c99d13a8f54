package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ColorMode is a --color value, one of auto, always or never.
type ColorMode string

var _ pflag.Value = (*ColorMode)(nil)

func (m *ColorMode) String() string {
	if *m == "" {
		return "auto"
	}
	return string(*m)
}

func (m *ColorMode) Set(v string) error {
	switch v = strings.ToLower(v); v {
	case "auto", "always", "never":
		*m = ColorMode(v)
		return nil
	}
	return fmt.Errorf("must be one of auto, always or never, got %q", v)
}

func (m *ColorMode) Type() string {
	return "mode"
}

// ColorOptions
type ColorOptions struct {
	Mode ColorMode
}

func AddColorArgs(cmd *cobra.Command, o *ColorOptions) {
	o.Mode = "auto"
	cmd.PersistentFlags().Var(&o.Mode, "color",
		`Colorize output: "auto", "always" or "never".`)
}
