package linkedinify

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Default LinkedIn post limits.
const (
	DefaultMaxChars    = 3000
	DefaultMaxHashtags = 30
	DefaultMaxMentions = 10
)

// wordsPerMinute is the reading speed behind Stats.ReadingMinutes.
const wordsPerMinute = 200

var (
	// #tag preceded by start or a non-word rune. Numeric tags such as #2024
	// count.
	hashtagPattern = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_&/#])#[\p{L}\p{N}_]+`)

	// @name preceded by start or a non-word rune, so e-mail addresses are skipped.
	mentionPattern = regexp.MustCompile(`(?:^|[^\p{L}\p{N}_.@])@[\p{L}\p{N}_][\p{L}\p{N}_.-]*`)

	// one or more blank lines
	paragraphBreak = regexp.MustCompile(`\n[ \t]*\n`)
)

// Stats describes a piece of post text.
type Stats struct {
	Words              int `json:"words"`
	Characters         int `json:"characters"`
	CharactersNoSpaces int `json:"charactersNoSpaces"`
	Graphemes          int `json:"graphemes"`
	UTF16Length        int `json:"utf16Length"`
	Lines              int `json:"lines"`
	Paragraphs         int `json:"paragraphs"`
	ReadingMinutes     int `json:"readingMinutes"`
	Hashtags           int `json:"hashtags"`
	Mentions           int `json:"mentions"`
}

// Analyze computes statistics for text. It never fails.
func Analyze(text string) Stats {
	if text == "" {
		return Stats{}
	}

	words := len(strings.Fields(text))
	noSpaces := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			noSpaces++
		}
	}

	return Stats{
		Words:              words,
		Characters:         utf8.RuneCountInString(text),
		CharactersNoSpaces: noSpaces,
		Graphemes:          uniseg.GraphemeClusterCount(text),
		UTF16Length:        utf16Len(text),
		Lines:              strings.Count(text, "\n") + 1,
		Paragraphs:         countParagraphs(text),
		ReadingMinutes:     (words + wordsPerMinute - 1) / wordsPerMinute,
		Hashtags:           len(hashtagPattern.FindAllStringIndex(text, -1)),
		Mentions:           len(mentionPattern.FindAllStringIndex(text, -1)),
	}
}

func countParagraphs(text string) int {
	n := 0
	for _, p := range paragraphBreak.Split(strings.ReplaceAll(text, "\r\n", "\n"), -1) {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// Limits holds platform limits. A zero field disables its check.
type Limits struct {
	MaxChars    int `json:"maxChars"`
	MaxHashtags int `json:"maxHashtags"`
	MaxMentions int `json:"maxMentions"`
}

// DefaultLimits returns the LinkedIn limits.
func DefaultLimits() Limits {
	return Limits{
		MaxChars:    DefaultMaxChars,
		MaxHashtags: DefaultMaxHashtags,
		MaxMentions: DefaultMaxMentions,
	}
}

// WarningCode identifies a limit violation.
type WarningCode string

// Warning codes.
const (
	ExceedsCharLimit WarningCode = "exceeds_char_limit"
	TooManyHashtags  WarningCode = "too_many_hashtags"
	TooManyMentions  WarningCode = "too_many_mentions"
)

// Warning reports a limit the text goes over.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
	Limit   int         `json:"limit"`
	Actual  int         `json:"actual"`
}

func (w Warning) String() string {
	return w.Message
}

// Validate checks stats against limits and returns one warning per
// exceeded limit, in a stable order. Characters are counted in UTF-16
// code units, as post composers do; a styled letter counts twice.
func Validate(stats Stats, limits Limits) []Warning {
	var warnings []Warning

	if limits.MaxChars > 0 && stats.UTF16Length > limits.MaxChars {
		warnings = append(warnings, Warning{
			Code:    ExceedsCharLimit,
			Message: fmt.Sprintf("post is %d characters long, limit is %d", stats.UTF16Length, limits.MaxChars),
			Limit:   limits.MaxChars,
			Actual:  stats.UTF16Length,
		})
	}
	if limits.MaxHashtags > 0 && stats.Hashtags > limits.MaxHashtags {
		warnings = append(warnings, Warning{
			Code:    TooManyHashtags,
			Message: fmt.Sprintf("post has %d hashtags, limit is %d", stats.Hashtags, limits.MaxHashtags),
			Limit:   limits.MaxHashtags,
			Actual:  stats.Hashtags,
		})
	}
	if limits.MaxMentions > 0 && stats.Mentions > limits.MaxMentions {
		warnings = append(warnings, Warning{
			Code:    TooManyMentions,
			Message: fmt.Sprintf("post has %d mentions, limit is %d", stats.Mentions, limits.MaxMentions),
			Limit:   limits.MaxMentions,
			Actual:  stats.Mentions,
		})
	}

	return warnings
}
