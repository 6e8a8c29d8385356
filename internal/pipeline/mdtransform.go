package pipeline

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2 newlines
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// byteOrderMark is dropped when it starts the document.
const byteOrderMark = "\uFEFF"

// normalize prepares raw editor input: no leading BOM, LF line endings.
// Runes are not recomposed; code and non-Latin text pass through as typed.
func normalize(content string) (string, error) {
	content = strings.TrimPrefix(content, byteOrderMark)
	return normalizeLineEndings(content), nil
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive newlines to 2.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}

// normalizeWhitespace compresses blank lines and trims the document.
func normalizeWhitespace(content string) (string, error) {
	return strings.TrimSpace(compressBlankLines(content)), nil
}
