// Package catalog holds the ordered list of named styles a user picks from by
// index or by name.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/restyle/pkg/style"
)

// ErrUnknownStyle is returned when an index or name does not resolve.
var ErrUnknownStyle = errors.New("catalog: unknown style")

// Catalog is an ordered set of style descriptors.
type Catalog struct {
	styles []style.Descriptor
}

// New validates and collects styles in order.
func New(styles ...style.Descriptor) (*Catalog, error) {
	c := &Catalog{styles: make([]style.Descriptor, 0, len(styles))}
	for _, d := range styles {
		if _, err := c.Add(d); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Len is the number of styles.
func (c *Catalog) Len() int {
	return len(c.styles)
}

// All returns a copy of every descriptor in order.
func (c *Catalog) All() []style.Descriptor {
	out := make([]style.Descriptor, len(c.styles))
	for i, d := range c.styles {
		out[i] = clone(d)
	}
	return out
}

// Get returns the descriptor at index.
func (c *Catalog) Get(index int) (style.Descriptor, error) {
	if index < 0 || index >= len(c.styles) {
		return style.Descriptor{}, fmt.Errorf("%w: index %d of %d", ErrUnknownStyle, index, len(c.styles))
	}
	return clone(c.styles[index]), nil
}

// Find looks a style up by name, ignoring case.
func (c *Catalog) Find(name string) (int, style.Descriptor, error) {
	name = strings.TrimSpace(name)
	for i, d := range c.styles {
		if strings.EqualFold(d.Name, name) {
			return i, clone(d), nil
		}
	}
	return -1, style.Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Resolve accepts either an index or a name.
func (c *Catalog) Resolve(key string) (style.Descriptor, error) {
	if index, err := strconv.Atoi(strings.TrimSpace(key)); err == nil {
		return c.Get(index)
	}
	_, d, err := c.Find(key)
	return d, err
}

// Add appends d, or replaces the style of the same name, and returns its index.
func (c *Catalog) Add(d style.Descriptor) (int, error) {
	if err := d.Validate(); err != nil {
		return -1, err
	}
	d = clone(d)
	if i, _, err := c.Find(d.Name); err == nil {
		c.styles[i] = d
		return i, nil
	}
	c.styles = append(c.styles, d)
	return len(c.styles) - 1, nil
}

// Remove deletes the style of the given name.
func (c *Catalog) Remove(name string) error {
	i, _, err := c.Find(name)
	if err != nil {
		return err
	}
	c.styles = append(c.styles[:i], c.styles[i+1:]...)
	return nil
}

func clone(d style.Descriptor) style.Descriptor {
	d.Attributes = d.Attributes.Clone()
	return d
}

// MarshalJSON writes the catalog as a list of descriptors.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.styles)
}

// UnmarshalJSON reads a list of descriptors, validating each.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	var list []style.Descriptor
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	parsed, err := New(list...)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	*c = *parsed
	return nil
}
