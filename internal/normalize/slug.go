package normalize

import (
	"strings"
	"unicode"
)

// Slugify derives the URL-safe identifier used as the enrichment join key.
//
// The text is lowercased and trimmed; anything other than ASCII letters,
// digits, whitespace and hyphens is dropped; runs of whitespace and hyphens
// become a single "-"; leading and trailing hyphens never appear.
// Slugify(Slugify(s)) == Slugify(s).
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))

	var b strings.Builder
	b.Grow(len(s))

	sep := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if sep && b.Len() > 0 {
				b.WriteByte('-')
			}
			sep = false
			b.WriteRune(r)
		case r == '-' || unicode.IsSpace(r):
			sep = true
		}
	}
	return b.String()
}
