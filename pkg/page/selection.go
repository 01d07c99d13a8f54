package page

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// RunRef addresses a run by paragraph and run index.
type RunRef struct {
	Paragraph int
	Run       int
}

func (r RunRef) String() string {
	return fmt.Sprintf("%d:%d", r.Paragraph, r.Run)
}

// ParseRunRef reads the "paragraph:run" form produced by String.
func ParseRunRef(raw string) (RunRef, error) {
	ps, rs, ok := strings.Cut(strings.TrimSpace(raw), ":")
	if !ok {
		return RunRef{}, fmt.Errorf("page: run ref %q: want paragraph:run", raw)
	}
	p, err := strconv.Atoi(ps)
	if err != nil {
		return RunRef{}, fmt.Errorf("page: run ref %q: %w", raw, err)
	}
	r, err := strconv.Atoi(rs)
	if err != nil {
		return RunRef{}, fmt.Errorf("page: run ref %q: %w", raw, err)
	}
	if p < 0 || r < 0 {
		return RunRef{}, fmt.Errorf("page: run ref %q: negative index", raw)
	}
	return RunRef{Paragraph: p, Run: r}, nil
}

// Selection is a set of run refs.
type Selection struct {
	refs map[RunRef]struct{}
}

// NewSelection builds a selection; duplicates collapse.
func NewSelection(refs ...RunRef) Selection {
	s := Selection{refs: make(map[RunRef]struct{}, len(refs))}
	for _, r := range refs {
		s.refs[r] = struct{}{}
	}
	return s
}

// ParseSelection reads a comma separated list of refs, e.g. "0:1,2:0".
func ParseSelection(raw string) (Selection, error) {
	var refs []RunRef
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		ref, err := ParseRunRef(part)
		if err != nil {
			return Selection{}, err
		}
		refs = append(refs, ref)
	}
	return NewSelection(refs...), nil
}

// Len is the number of distinct refs.
func (s Selection) Len() int {
	return len(s.refs)
}

// Refs returns the refs in document order.
func (s Selection) Refs() []RunRef {
	out := make([]RunRef, 0, len(s.refs))
	for r := range s.refs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Paragraph != out[j].Paragraph {
			return out[i].Paragraph < out[j].Paragraph
		}
		return out[i].Run < out[j].Run
	})
	return out
}

func (s Selection) String() string {
	refs := s.Refs()
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = r.String()
	}
	return strings.Join(parts, ",")
}
