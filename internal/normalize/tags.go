package normalize

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var nonAlnumRun = regexp.MustCompile(`[^a-z0-9]+`)

// minCategoryWord is the shortest category word that becomes a tag;
// it keeps connectives like "in" and "of" out.
const minCategoryWord = 3

// GenerateTags builds the search tags for a scholarship: one tag from the
// type ("Merit-Based" -> "merit-based") plus every category word of three
// or more characters. The result has no duplicates and keeps first-seen
// order.
func GenerateTags(typ, category string) []string {
	tags := make([]string, 0, 4)
	seen := make(map[string]struct{}, 4)
	add := func(tag string) {
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	if strings.TrimSpace(typ) != "" {
		add(nonAlnumRun.ReplaceAllString(strings.ToLower(typ), "-"))
	}

	for _, word := range strings.Fields(strings.ToLower(category)) {
		if utf8.RuneCountInString(word) >= minCategoryWord {
			add(word)
		}
	}
	return tags
}
