package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/alnah/go-linkedinify/internal/unistyle"
)

// Output glyphs.
const (
	Bullet       = "•"
	ThoughtGlyph = "💭"
)

var (
	// - item, * item, + item
	unorderedItem = regexp.MustCompile(`(?m)^([ \t]*)[-*+][ \t]+`)

	// 12. item
	orderedItem = regexp.MustCompile(`^([ \t]*)\d+\.[ \t]+(.*)$`)

	// ***both*** is matched first so its inner **..** is never styled
	strongOrBoth = regexp.MustCompile(`\*\*\*([^*\n]+?)\*\*\*|\*\*([^\n]+?)\*\*`)

	// # .. ### headers
	atxHeader = regexp.MustCompile(`(?m)^#{1,3}[ \t]+(.+)$`)

	// > quote
	blockquote = regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`)

	// [label](url "title") and ![alt](src)
	inlineLink = regexp.MustCompile(`!?\[([^\]\n]*)\]\(([^)\s]+)(?:[ \t]+"[^"\n]*")?\)`)
)

// convertUnorderedLists turns list markers into literal bullets.
// Runs before emphasis so "* item" is never mistaken for italic.
func convertUnorderedLists(content string) (string, error) {
	return unorderedItem.ReplaceAllString(content, "${1}"+Bullet+" "), nil
}

// renumberOrderedLists renumbers each run of "N. text" lines from 1.
// A non-blank, non-list line closes the run. A blank line keeps it open.
func renumberOrderedLists(content string) (string, error) {
	lines := strings.Split(content, "\n")
	counter := 0
	for i, line := range lines {
		m := orderedItem.FindStringSubmatch(line)
		switch {
		case m != nil:
			counter++
			lines[i] = m[1] + strconv.Itoa(counter) + ". " + m[2]
		case strings.TrimSpace(line) == "":
		default:
			counter = 0
		}
	}
	return strings.Join(lines, "\n"), nil
}

// convertEmphasis resolves **bold**, then *italic*. ***both*** has no
// distinct styled alphabet and is left as written.
func convertEmphasis(content string) (string, error) {
	content = strongOrBoth.ReplaceAllStringFunc(content, func(match string) string {
		if strings.HasPrefix(match, "***") {
			return match
		}
		return unistyle.ToBold(match[2 : len(match)-2])
	})
	return convertItalic(content), nil
}

// convertItalic styles *text* spans whose asterisks are not part of a
// longer asterisk run. Spans whose text starts with a bullet are kept.
func convertItalic(content string) string {
	if !strings.Contains(content, "*") {
		return content
	}

	var b strings.Builder
	b.Grow(len(content))

	i := 0
	for i < len(content) {
		if !isLoneAsterisk(content, i) {
			b.WriteByte(content[i])
			i++
			continue
		}

		end := closingAsterisk(content, i+1)
		if end < 0 {
			b.WriteByte(content[i])
			i++
			continue
		}

		inner := content[i+1 : end]
		if strings.HasPrefix(strings.TrimSpace(inner), Bullet) {
			b.WriteString(content[i : end+1])
		} else {
			b.WriteString(unistyle.ToItalic(inner))
		}
		i = end + 1
	}
	return b.String()
}

// isLoneAsterisk reports whether content[i] is a '*' with no '*' neighbour.
func isLoneAsterisk(content string, i int) bool {
	if content[i] != '*' {
		return false
	}
	if i > 0 && content[i-1] == '*' {
		return false
	}
	return i+1 >= len(content) || content[i+1] != '*'
}

// closingAsterisk finds the lone '*' closing a span opened before from,
// on the same line. Returns -1 when the span is empty or unclosed.
func closingAsterisk(content string, from int) int {
	for j := from; j < len(content); j++ {
		switch content[j] {
		case '\n':
			return -1
		case '*':
			if j == from || !isLoneAsterisk(content, j) {
				return -1
			}
			return j
		}
	}
	return -1
}

// convertHeaders turns # .. ### lines into bold text followed by a blank line.
// All levels collapse to one style.
func convertHeaders(content string) (string, error) {
	return atxHeader.ReplaceAllStringFunc(content, func(match string) string {
		text := atxHeader.FindStringSubmatch(match)[1]
		return unistyle.ToBold(strings.TrimSpace(text)) + "\n"
	}), nil
}

// convertBlockquotes replaces the quote marker with a thought glyph.
func convertBlockquotes(content string) (string, error) {
	return blockquote.ReplaceAllString(content, ThoughtGlyph+" "), nil
}

// convertLinks rewrites [label](url) as "label (url)".
func convertLinks(content string) (string, error) {
	return inlineLink.ReplaceAllStringFunc(content, func(match string) string {
		m := inlineLink.FindStringSubmatch(match)
		label, url := strings.TrimSpace(m[1]), m[2]
		if label == "" || label == url {
			return url
		}
		return label + " (" + url + ")"
	}), nil
}
