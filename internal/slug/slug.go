// Package slug derives URL-safe, unique identifiers from game titles.
package slug

import (
	"fmt"
	"strings"
	"unicode"
)

// fallbackBase is used when normalization strips a title down to nothing.
const fallbackBase = "game"

// Generate converts text into a URL-friendly slug: lowercase, whitespace and
// underscores become hyphens, everything outside [a-z0-9-] is dropped,
// repeated hyphens collapse, and leading/trailing hyphens are trimmed. The
// result may be empty; callers wanting a non-empty base use GenerateUnique.
func Generate(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		switch {
		case unicode.IsSpace(r) || r == '_' || r == '-':
			b.WriteByte('-')
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}

	out := b.String()
	for strings.Contains(out, "--") {
		out = strings.ReplaceAll(out, "--", "-")
	}
	return strings.Trim(out, "-")
}

// GenerateUnique returns a slug for text that is absent from existing,
// appending -1, -2, ... to the base until a free candidate is found. An
// empty base falls back to "game". The caller supplies a consistent
// snapshot of existing slugs; uniqueness under concurrent writers is
// ultimately guarded by the database index.
func GenerateUnique(text string, existing map[string]bool) string {
	base := Generate(text)
	if base == "" {
		base = fallbackBase
	}

	candidate := base
	for counter := 1; existing[candidate]; counter++ {
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
	return candidate
}
