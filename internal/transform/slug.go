package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	texttransform "golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify derives a URL-safe slug: diacritics folded to their base letters,
// lowercased, with every run of other characters collapsed to one hyphen.
// "Guia de preços" becomes "guia-de-precos". May return "" when the input
// has no alphanumeric content; callers fall back to the item id.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range strings.ToLower(foldDiacritics(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}
	return b.String()
}

// foldDiacritics decomposes the string and strips combining marks, so
// accented letters reduce to ASCII. Unfoldable input is returned unchanged.
func foldDiacritics(s string) string {
	chain := texttransform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := texttransform.String(chain, s)
	if err != nil {
		return s
	}
	return folded
}
