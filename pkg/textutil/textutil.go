// Package textutil provides the small string helpers shared by the content
// generators and the checklist. Lengths are counted in runes so that
// Indonesian text with diacritics or emoji is measured the way users see it.
package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordCount returns the number of whitespace-delimited words in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// FirstWord returns the first whitespace-delimited word of s, or "".
func FirstWord(s string) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

// TruncateWords keeps at most max words, joined by single spaces.
// Strings already within the limit are returned unchanged.
func TruncateWords(s string, max int) string {
	words := strings.Fields(s)
	if len(words) <= max {
		return s
	}
	return strings.Join(words[:max], " ")
}

// Capitalize upper-cases the first rune and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// Condense trims s and removes every inner space character.
func Condense(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), " ", "")
}

// Len returns the length of s in runes.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate cuts s to at most max runes. It is not word-boundary aware.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}

// ContainsAny reports whether s contains any of needles, ignoring case.
func ContainsAny(s string, needles []string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
