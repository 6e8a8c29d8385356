// Package unistyle maps Latin letters and digits to Unicode Mathematical
// Alphanumeric Symbols so text looks bold or italic without markup support.
//
// Only A-Z, a-z and 0-9 are mapped. Every other rune (punctuation, emoji,
// non-Latin scripts, already-styled code points) passes through unchanged, so
// applying a style twice yields the same result as applying it once.
package unistyle

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Alphabet is a fixed 62-slot style table addressed by base code points.
// A zero Digit means the style has no digit variant.
type Alphabet struct {
	Name  string
	Upper rune // styled 'A'
	Lower rune // styled 'a'
	Digit rune // styled '0', or 0
}

// Mathematical Sans-Serif blocks (U+1D5A0..U+1D7FF).
var (
	Bold = Alphabet{
		Name:  "sans-serif bold",
		Upper: 0x1D5D4,
		Lower: 0x1D5EE,
		Digit: 0x1D7EC,
	}

	// Italic digits do not exist in the Mathematical Alphanumeric block.
	Italic = Alphabet{
		Name:  "sans-serif italic",
		Upper: 0x1D608,
		Lower: 0x1D622,
	}
)

// Map returns the styled rune for r and whether r is part of the alphabet.
func (a Alphabet) Map(r rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return a.Upper + (r - 'A'), true
	case r >= 'a' && r <= 'z':
		return a.Lower + (r - 'a'), true
	case r >= '0' && r <= '9' && a.Digit != 0:
		return a.Digit + (r - '0'), true
	}
	return r, false
}

// Apply styles every mappable rune of s.
func (a Alphabet) Apply(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		mapped, _ := a.Map(r)
		b.WriteRune(mapped)
	}
	return b.String()
}

// ToBold converts A-Z, a-z and 0-9 to Mathematical Sans-Serif Bold.
func ToBold(s string) string { return Bold.Apply(s) }

// ToItalic converts A-Z and a-z to Mathematical Sans-Serif Italic.
func ToItalic(s string) string { return Italic.Apply(s) }

// nonLatinScripts are the scripts reported by HasNonLatinChars.
var nonLatinScripts = []*unicode.RangeTable{
	unicode.Cyrillic,
	unicode.Greek,
	unicode.Armenian,
	unicode.Hebrew,
	unicode.Arabic,
	unicode.Syriac,
	unicode.Thaana,
	unicode.Devanagari,
	unicode.Bengali,
	unicode.Gurmukhi,
	unicode.Gujarati,
	unicode.Oriya,
	unicode.Tamil,
	unicode.Telugu,
	unicode.Kannada,
	unicode.Malayalam,
	unicode.Sinhala,
	unicode.Thai,
	unicode.Lao,
	unicode.Tibetan,
	unicode.Myanmar,
	unicode.Georgian,
	unicode.Hangul,
	unicode.Ethiopic,
	unicode.Khmer,
	unicode.Mongolian,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Bopomofo,
	unicode.Han,
}

// HasNonLatinChars reports whether s contains a rune from a non-Latin script.
// It is diagnostic only: styling never depends on it.
func HasNonLatinChars(s string) bool {
	for _, r := range s {
		if r < 0x0370 {
			continue
		}
		if unicode.IsOneOf(nonLatinScripts, r) {
			return true
		}
	}
	return false
}

// IsStyled reports whether r belongs to the Mathematical Alphanumeric Symbols block.
func IsStyled(r rune) bool {
	return r >= 0x1D400 && r <= 0x1D7FF
}

// Plain folds styled code points back to their ASCII letters and digits.
// Runs without styled runes are returned as-is so NFKC never touches
// unrelated compatibility characters.
func Plain(s string) string {
	if !strings.ContainsFunc(s, IsStyled) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsStyled(r) {
			b.WriteString(norm.NFKC.String(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
