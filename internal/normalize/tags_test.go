package normalize

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestGenerateTags(t *testing.T) {
	tests := []struct {
		typ      string
		category string
		want     []string
	}{
		{"Merit-Based", "Academic Excellence", []string{"merit-based", "academic", "excellence"}},
		{"Merit-Based", "Women in STEM", []string{"merit-based", "women", "stem"}},
		{"Need Based", "First Generation", []string{"need-based", "first", "generation"}},
		{"Athletic", "Sports", []string{"athletic", "sports"}},
		{"STEM", "STEM", []string{"stem"}},
		{"", "Art of Design", []string{"art", "design"}},
		{"Merit-Based", "", []string{"merit-based"}},
		{"", "", []string{}},
	}

	for _, tt := range tests {
		got := GenerateTags(tt.typ, tt.category)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("GenerateTags(%q, %q) = %v, want %v", tt.typ, tt.category, got, tt.want)
		}
	}
}

func TestGenerateTagsNoDuplicatesNoShortWords(t *testing.T) {
	cases := [][2]string{
		{"Sports", "sports SPORTS Sports"},
		{"Minority Students", "Minority Students of the US"},
		{"Merit", "A an in of to by merit"},
	}
	for _, c := range cases {
		tags := GenerateTags(c[0], c[1])
		seen := map[string]bool{}
		for _, tag := range tags {
			if seen[tag] {
				t.Errorf("GenerateTags(%q, %q) has duplicate %q", c[0], c[1], tag)
			}
			seen[tag] = true
		}
		typeTag := nonAlnumRun.ReplaceAllString(strings.ToLower(c[0]), "-")
		for _, tag := range tags {
			if tag != typeTag && utf8.RuneCountInString(tag) <= 2 {
				t.Errorf("GenerateTags(%q, %q) kept short category word %q", c[0], c[1], tag)
			}
		}
	}
}
