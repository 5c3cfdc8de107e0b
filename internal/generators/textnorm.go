package generators

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// collapseText normalizes free text the way both the Meta-Code and
// Text-Code generators do (spec.md §4.7, §9; ported from
// `iscc_core.code_content_text.collapse_text`): NFKD-decompose so accented
// letters split into a base letter plus a combining mark, drop the
// combining marks (stripping diacritics while leaving non-decomposable
// letters like æ/ø untouched), drop dash punctuation (category Pd)
// entirely rather than replacing it with a space — so "similarity-
// preserving" becomes "similaritypreserving", not two words — then
// collapse every run of whitespace or control characters to a single
// space and trim the ends.
func collapseText(s string) string {
	decomposed := norm.NFKD.String(s)

	var stripped strings.Builder
	stripped.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Pd, r) {
			continue
		}
		stripped.WriteRune(r)
	}

	var out strings.Builder
	out.Grow(stripped.Len())
	prevSpace := false
	for _, r := range stripped.String() {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			if !prevSpace {
				out.WriteRune(' ')
			}
			prevSpace = true
			continue
		}
		prevSpace = false
		out.WriteRune(r)
	}
	return strings.TrimSpace(out.String())
}

// trimUTF8 truncates s to at most n UTF-8 bytes without splitting a
// multi-byte rune, then trims surrounding whitespace (spec.md §4.7 step 1/2,
// `iscc_core.code_meta.trim_text`).
func trimUTF8(s string, n int) string {
	b := []byte(s)
	if len(b) > n {
		b = b[:n]
		for len(b) > 0 && !utf8.Valid(b) {
			b = b[:len(b)-1]
		}
	}
	return strings.TrimSpace(string(b))
}

// slidingWindowRunes yields overlapping windows of width runes over s,
// stepping by one rune. If s is shorter than width, the whole sequence is
// returned as a single window (`iscc_core.utils.sliding_window`).
func slidingWindowRunes(s []rune, width int) [][]rune {
	if len(s) <= width {
		return [][]rune{s}
	}
	out := make([][]rune, 0, len(s)-width+1)
	for i := 0; i+width <= len(s); i++ {
		out = append(out, s[i:i+width])
	}
	return out
}

// slidingWindowBytes yields overlapping windows of width bytes over b,
// stepping by one byte. Used for extra-metadata ngrams on raw binary input.
func slidingWindowBytes(b []byte, width int) [][]byte {
	if len(b) <= width {
		return [][]byte{b}
	}
	out := make([][]byte, 0, len(b)-width+1)
	for i := 0; i+width <= len(b); i++ {
		out = append(out, b[i:i+width])
	}
	return out
}
