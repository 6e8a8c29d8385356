package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Code text is shielded by shifting every ASCII rune into the Supplementary
// Private Use Area-A. No later stage matches those runes, so emphasis, list,
// header and link rules cannot touch code. Markers delimit the shielded spans
// until the code-blocks and inline-code stages render them.
const (
	shieldBase rune = 0xF0000
	shieldEnd  rune = shieldBase + 0x80

	fenceOpen   = '\uE010'
	fenceBody   = '\uE011'
	fenceClose  = '\uE012'
	inlineOpen  = '\uE013'
	inlineClose = '\uE014'
)

// Code block frame glyphs.
const (
	frameTop       = "┌──── "
	frameLine      = "│ "
	frameEmptyLine = "│"
	frameBottom    = "└────────────────────"
	defaultLang    = "CODE"
)

var (
	// ```lang ... ``` at line starts
	fencedCode = regexp.MustCompile("(?ms)^```[ \\t]*([A-Za-z0-9_+#.-]*)[^\\n]*\\n(.*?)^```[ \\t]*$")

	// `code`
	inlineCode = regexp.MustCompile("`([^`\\n]+)`")

	// ](target) of inline links and images
	linkTarget = regexp.MustCompile(`\]\(([^)\s]+)`)

	// https://host/path outside link syntax
	bareURL = regexp.MustCompile(`https?://[^\s<>()\[\]]+`)

	shieldedFence  = regexp.MustCompile("\\x{E010}([^\\x{E011}]*)\\x{E011}([^\\x{E012}]*)\\x{E012}")
	shieldedInline = regexp.MustCompile("\\x{E013}([^\\x{E014}]*)\\x{E014}")
)

// urlTrailing is sentence punctuation and emphasis that ends a bare URL.
const urlTrailing = ".,;:!?*_'\""

// shield moves ASCII runes into the private range.
func shield(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 4)
	for _, r := range s {
		if r < 0x80 {
			r += shieldBase
		}
		b.WriteRune(r)
	}
	return b.String()
}

// unshield reverses shield.
func unshield(s string) string {
	if !strings.ContainsFunc(s, isShielded) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isShielded(r) {
			r -= shieldBase
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isShielded(r rune) bool {
	return r >= shieldBase && r < shieldEnd
}

func isReserved(r rune) bool {
	return isShielded(r) || (r >= fenceOpen && r <= inlineClose)
}

// protectCode shields fenced code blocks, then inline code spans, then link
// targets and bare URLs so emphasis cannot style asterisks inside them.
func protectCode(content string) (string, error) {
	if i := strings.IndexFunc(content, isReserved); i >= 0 {
		return "", fmt.Errorf("%w: at byte %d", ErrReservedRune, i)
	}

	content = fencedCode.ReplaceAllStringFunc(content, func(match string) string {
		m := fencedCode.FindStringSubmatch(match)
		body := strings.TrimSuffix(m[2], "\n")
		return string(fenceOpen) + shield(m[1]) + string(fenceBody) + shield(body) + string(fenceClose)
	})

	content = inlineCode.ReplaceAllStringFunc(content, func(match string) string {
		m := inlineCode.FindStringSubmatch(match)
		return string(inlineOpen) + shield(m[1]) + string(inlineClose)
	})

	return protectURLs(content), nil
}

// protectURLs shields link targets without markers. reveal-code restores
// them like any other shielded text.
func protectURLs(content string) string {
	content = linkTarget.ReplaceAllStringFunc(content, func(match string) string {
		return "](" + shield(match[2:])
	})
	return bareURL.ReplaceAllStringFunc(content, func(match string) string {
		url := strings.TrimRight(match, urlTrailing)
		return shield(url) + match[len(url):]
	})
}

// renderCodeBlocks frames shielded fences:
//
//	┌──── LANG
//	│ line
//	└────────────────────
//
// Code lines stay shielded until reveal-code.
func renderCodeBlocks(content string) (string, error) {
	return shieldedFence.ReplaceAllStringFunc(content, func(match string) string {
		m := shieldedFence.FindStringSubmatch(match)

		lang := strings.ToUpper(unshield(m[1]))
		if lang == "" {
			lang = defaultLang
		}

		var b strings.Builder
		b.WriteString(frameTop)
		b.WriteString(lang)
		b.WriteByte('\n')
		if m[2] != "" {
			for _, line := range strings.Split(m[2], string(shieldBase+'\n')) {
				if line == "" {
					b.WriteString(frameEmptyLine)
				} else {
					b.WriteString(frameLine)
					b.WriteString(line)
				}
				b.WriteByte('\n')
			}
		}
		b.WriteString(frameBottom)
		return b.String()
	}), nil
}

// renderInlineCode drops the span markers, leaving code text unstyled.
func renderInlineCode(content string) (string, error) {
	return shieldedInline.ReplaceAllString(content, "$1"), nil
}

// revealCode restores shielded code text.
func revealCode(content string) (string, error) {
	return unshield(content), nil
}
