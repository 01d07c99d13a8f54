package splice

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func startsWithSpace(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}

func endsWithSpace(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && unicode.IsSpace(r)
}

// splitLastWord cuts s after its last whitespace rune. rest keeps that
// whitespace; word is everything after it, or all of s when s has none.
func splitLastWord(s string) (rest, word string) {
	i := strings.LastIndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return "", s
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return s[:i+size], s[i+size:]
}

// splitFirstWord cuts s before its first whitespace rune.
func splitFirstWord(s string) (word, rest string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}
