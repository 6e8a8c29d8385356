package linkedinify

import "github.com/alnah/go-linkedinify/internal/unistyle"

// ToBoldUnicode maps A-Z, a-z and 0-9 to Mathematical Sans-Serif Bold.
// Every other rune passes through.
func ToBoldUnicode(s string) string {
	return unistyle.ToBold(s)
}

// ToItalicUnicode maps A-Z and a-z to Mathematical Sans-Serif Italic.
// Digits have no italic form and pass through.
func ToItalicUnicode(s string) string {
	return unistyle.ToItalic(s)
}

// HasNonLatinChars reports whether s contains runes from a non-Latin script.
// Styling never depends on it.
func HasNonLatinChars(s string) bool {
	return unistyle.HasNonLatinChars(s)
}

// Unstyle folds styled mathematical letters and digits back to ASCII.
func Unstyle(s string) string {
	return unistyle.Plain(s)
}
