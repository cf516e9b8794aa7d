// Package jptext provides the text normalization used for search matching
// across penlight and careguide: width folding, kana folding, and
// Japanese-locale collation.
package jptext

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Normalize trims, lowercases, and maps full-width Latin letters and digits
// (Ａ-Ｚ ａ-ｚ ０-９) to their half-width equivalents. Idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'Ａ' && r <= 'Ｚ', r >= 'ａ' && r <= 'ｚ', r >= '０' && r <= '９':
			return r - 0xFEE0
		}
		return r
	}, s)
}

// KataToHira maps katakana (U+30A1..U+30F6) to hiragana by the fixed
// code-point offset between the two blocks. Idempotent.
func KataToHira(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x30A1 && r <= 0x30F6 {
			return r - 0x60
		}
		return r
	}, s)
}

// FoldSearch produces the match key used for free-text search: kana folding
// followed by Normalize. Queries and haystacks must go through the same fold.
func FoldSearch(s string) string {
	return Normalize(KataToHira(s))
}

// NewCollator returns a Japanese-locale collator for ordering generation
// labels and member names the way a ja localeCompare would.
func NewCollator() *collate.Collator {
	return collate.New(language.Japanese)
}
