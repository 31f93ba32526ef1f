// Package slug turns titles and term names into URL slugs matching
// ^[a-z0-9]+(-[a-z0-9]+)*$.
package slug

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Make folds s to ASCII, lowercases it and joins alphanumeric runs with
// single hyphens. The result is empty when s has no ASCII letters or
// digits after folding.
func Make(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	return b.String()
}

// ForTerm is Make with a stable fallback for names that fold to nothing,
// such as names written only in CJK characters.
func ForTerm(name string) string {
	return OrHash(name, "term")
}

// OrHash returns Make(name), or prefix plus the first 8 hex digits of the
// SHA-256 of the trimmed name when Make yields nothing. Distinct names get
// distinct fallbacks.
func OrHash(name, prefix string) string {
	if s := Make(name); s != "" {
		return s
	}
	sum := sha256.Sum256([]byte(strings.TrimSpace(name)))
	return prefix + "-" + hex.EncodeToString(sum[:])[:8]
}
