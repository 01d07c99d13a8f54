package splice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpaceEdges(t *testing.T) {
	assert.True(t, endsWithSpace("Hello "))
	assert.True(t, endsWithSpace("tab\t"))
	assert.True(t, endsWithSpace("nbsp "))
	assert.False(t, endsWithSpace("Hello"))
	assert.False(t, endsWithSpace(""))

	assert.True(t, startsWithSpace(" world"))
	assert.True(t, startsWithSpace("　全角"))
	assert.False(t, startsWithSpace("world"))
	assert.False(t, startsWithSpace(""))
}

func TestSplitLastWord(t *testing.T) {
	cases := []struct {
		in, rest, word string
	}{
		{"foo ba", "foo ", "ba"},
		{"ba", "", "ba"},
		{"foo ", "foo ", ""},
		{"", "", ""},
		{"x héllo", "x ", "héllo"},
	}
	for _, c := range cases {
		rest, word := splitLastWord(c.in)
		assert.Equal(t, c.rest, rest, c.in)
		assert.Equal(t, c.word, word, c.in)
		assert.Equal(t, c.in, rest+word, c.in)
	}
}

func TestSplitFirstWord(t *testing.T) {
	cases := []struct {
		in, word, rest string
	}{
		{"r baz", "r", " baz"},
		{"r", "r", ""},
		{" baz", "", " baz"},
		{"", "", ""},
		{"naïve\tword", "naïve", "\tword"},
	}
	for _, c := range cases {
		word, rest := splitFirstWord(c.in)
		assert.Equal(t, c.word, word, c.in)
		assert.Equal(t, c.rest, rest, c.in)
		assert.Equal(t, c.in, word+rest, c.in)
	}
}
