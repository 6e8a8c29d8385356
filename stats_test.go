package linkedinify

import (
	"slices"
	"strings"
	"testing"
)

func TestAnalyze(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Stats
	}{
		{
			name:     "empty",
			input:    "",
			expected: Stats{},
		},
		{
			name:  "simple sentence",
			input: "Hello world",
			expected: Stats{
				Words: 2, Characters: 11, CharactersNoSpaces: 10, Graphemes: 11,
				UTF16Length: 11, Lines: 1, Paragraphs: 1, ReadingMinutes: 1,
			},
		},
		{
			name:  "styled letters are two UTF-16 units",
			input: ToBoldUnicode("Hi"),
			expected: Stats{
				Words: 1, Characters: 2, CharactersNoSpaces: 2, Graphemes: 2,
				UTF16Length: 4, Lines: 1, Paragraphs: 1, ReadingMinutes: 1,
			},
		},
		{
			name:  "lines and paragraphs",
			input: "a\n\nb\nc",
			expected: Stats{
				Words: 3, Characters: 6, CharactersNoSpaces: 3, Graphemes: 6,
				UTF16Length: 6, Lines: 4, Paragraphs: 2, ReadingMinutes: 1,
			},
		},
		{
			name:  "emoji with skin tone is one grapheme",
			input: "👍🏽",
			expected: Stats{
				Words: 1, Characters: 2, CharactersNoSpaces: 2, Graphemes: 1,
				UTF16Length: 4, Lines: 1, Paragraphs: 1, ReadingMinutes: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Analyze(tt.input); got != tt.expected {
				t.Errorf("Analyze(%q) = %+v, want %+v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestAnalyze_HashtagsAndMentions(t *testing.T) {
	t.Parallel()

	input := "Go #golang #2024 #open_source and #Go2 x#no ##double @alice me@x.com @bob."
	got := Analyze(input)

	if got.Hashtags != 4 {
		t.Errorf("Hashtags = %d, want 4", got.Hashtags)
	}
	if got.Mentions != 2 {
		t.Errorf("Mentions = %d, want 2", got.Mentions)
	}
}

func TestAnalyze_NumericHashtags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  int
	}{
		{input: "#2024", want: 1},
		{input: "recap #2024 #100DaysOfCode", want: 2},
		{input: "issue&#35;1 and a/#7", want: 0},
		{input: "# heading", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := Analyze(tt.input).Hashtags; got != tt.want {
				t.Errorf("Analyze(%q).Hashtags = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnalyze_ReadingMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		words int
		want  int
	}{
		{words: 1, want: 1},
		{words: 200, want: 1},
		{words: 201, want: 2},
		{words: 1000, want: 5},
	}

	for _, tt := range tests {
		text := strings.TrimSpace(strings.Repeat("w ", tt.words))
		if got := Analyze(text).ReadingMinutes; got != tt.want {
			t.Errorf("ReadingMinutes for %d words = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stats  Stats
		limits Limits
		want   []WarningCode
	}{
		{
			name:   "within limits",
			stats:  Stats{UTF16Length: 3000, Hashtags: 30, Mentions: 10},
			limits: DefaultLimits(),
		},
		{
			name:   "all exceeded in stable order",
			stats:  Stats{UTF16Length: 3001, Hashtags: 31, Mentions: 11},
			limits: DefaultLimits(),
			want:   []WarningCode{ExceedsCharLimit, TooManyHashtags, TooManyMentions},
		},
		{
			name:   "characters counted in UTF-16 units",
			stats:  Stats{Characters: 2000, UTF16Length: 4000},
			limits: DefaultLimits(),
			want:   []WarningCode{ExceedsCharLimit},
		},
		{
			name:   "zero limits disable checks",
			stats:  Stats{UTF16Length: 1 << 20, Hashtags: 100, Mentions: 100},
			limits: Limits{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			warnings := Validate(tt.stats, tt.limits)
			codes := make([]WarningCode, 0, len(warnings))
			for _, w := range warnings {
				codes = append(codes, w.Code)
				if w.Message == "" || w.Actual <= w.Limit {
					t.Errorf("warning %+v: want message and Actual > Limit", w)
				}
			}
			if !slices.Equal(codes, tt.want) {
				t.Errorf("Validate() codes = %v, want %v", codes, tt.want)
			}
		})
	}
}
