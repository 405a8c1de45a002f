// Package textutil provides unit tests for the text helpers.
package textutil

import (
	"strings"
	"testing"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lower", input: "capcut", want: "Capcut"},
		{name: "mixed case lowers the rest", input: "YouTube", want: "Youtube"},
		{name: "empty", input: "", want: ""},
		{name: "single rune", input: "x", want: "X"},
		{name: "leading digit", input: "3d", want: "3d"},
		{name: "non ascii", input: "élan", want: "Élan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Capitalize(tt.input); got != tt.want {
				t.Errorf("Capitalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "within limit", input: "abc", max: 5, want: "abc"},
		{name: "exact limit", input: "abcde", max: 5, want: "abcde"},
		{name: "cuts mid word", input: "hello world", max: 7, want: "hello w"},
		{name: "counts runes", input: "ñañaña", max: 3, want: "ñañ"},
		{name: "zero", input: "abc", max: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
		})
	}
}

func TestTruncateWords(t *testing.T) {
	long := strings.Repeat("kata ", 20)
	got := TruncateWords(long, 16)
	if WordCount(got) != 16 {
		t.Errorf("TruncateWords() kept %d words, want 16", WordCount(got))
	}

	short := "dua  kata"
	if got := TruncateWords(short, 16); got != short {
		t.Errorf("TruncateWords(%q) = %q, want input unchanged", short, got)
	}
}

func TestCondense(t *testing.T) {
	if got := Condense("  video editing tips "); got != "videoeditingtips" {
		t.Errorf("Condense() = %q", got)
	}
	if got := Condense("   "); got != "" {
		t.Errorf("Condense(blank) = %q, want empty", got)
	}
}

func TestFirstWordAndCounts(t *testing.T) {
	if got := FirstWord("  edit video "); got != "edit" {
		t.Errorf("FirstWord() = %q, want %q", got, "edit")
	}
	if got := FirstWord(""); got != "" {
		t.Errorf("FirstWord(empty) = %q, want empty", got)
	}
	if got := WordCount("a\tb\nc  d"); got != 4 {
		t.Errorf("WordCount() = %d, want 4", got)
	}
	if got := Len("héllo"); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
}

func TestContainsAny(t *testing.T) {
	if !ContainsAny("Tutorial LANGKAH demi langkah", []string{"langkah"}) {
		t.Error("expected case-insensitive match")
	}
	if ContainsAny("nothing here", []string{"subscribe", "like"}) {
		t.Error("expected no match")
	}
	if ContainsAny("anything", nil) {
		t.Error("expected no match for empty needles")
	}
}
