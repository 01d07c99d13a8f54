package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies whether a descriptor styles words or whole paragraphs.
type Kind int

const (
	// Character styles apply to the selected text only.
	Character Kind = iota
	// Paragraph styles apply to every paragraph touched by the selection.
	Paragraph
)

func (k Kind) String() string {
	switch k {
	case Character:
		return "character"
	case Paragraph:
		return "paragraph"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind converts a string to a Kind or returns an error for unknown values.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "character", "char", "c":
		return Character, nil
	case "paragraph", "para", "p", "":
		return Paragraph, nil
	}
	return Character, fmt.Errorf("style: unknown kind %q", raw)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Descriptor is a named style looked up once per command and applied read-only.
// It is passed by value; Attributes must not be mutated through it.
type Descriptor struct {
	Name        string     `json:"name"`
	Kind        Kind       `json:"kind"`
	Attributes  Attributes `json:"style"`
	ApplyColors bool       `json:"applyColors"`
	SpaceBefore string     `json:"spaceBefore,omitempty"`
	SpaceAfter  string     `json:"spaceAfter,omitempty"`
}

// CSS is the persisted attribute form of the descriptor's style record.
func (d Descriptor) CSS() string {
	return d.Attributes.CSS()
}

// Validate checks the spacing values are numeric and normalises them to one
// decimal place, defaulting to "0.0".
func (d *Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("style: descriptor name required")
	}
	var err error
	if d.SpaceBefore, err = normalizeSpacing(d.SpaceBefore); err != nil {
		return fmt.Errorf("style: %s: spaceBefore: %w", d.Name, err)
	}
	if d.SpaceAfter, err = normalizeSpacing(d.SpaceAfter); err != nil {
		return fmt.Errorf("style: %s: spaceAfter: %w", d.Name, err)
	}
	return nil
}

func normalizeSpacing(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "0.0", nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", err
	}
	if v < 0 {
		return "", fmt.Errorf("negative spacing %v", v)
	}
	return strconv.FormatFloat(v, 'f', 1, 64), nil
}
