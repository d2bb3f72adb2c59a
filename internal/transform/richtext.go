package transform

import "strings"

// toFormattedText passes pre-formatted markup through and wraps plain text
// in paragraph markup line by line. Non-strings are coerced first, so this
// never fails.
func (c *Converter) toFormattedText(value any) Result {
	s, ok := value.(string)
	if !ok {
		s = stringify(value)
	}

	if looksLikeMarkup(s) {
		return succeed(s)
	}

	lines := strings.Split(s, "\n")
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			parts = append(parts, "<br />")
			continue
		}
		parts = append(parts, "<p>"+line+"</p>")
	}
	return succeed(strings.Join(parts, ""))
}

// looksLikeMarkup treats a string opening with a tag as pre-formatted.
func looksLikeMarkup(s string) bool {
	return strings.HasPrefix(strings.TrimSpace(s), "<") && strings.Contains(s, ">")
}
