package pipeline

import (
	"testing"

	"github.com/alnah/go-linkedinify/internal/unistyle"
)

func TestConvertUnorderedLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "dash marker",
			input:    "- one\n- two",
			expected: "• one\n• two",
		},
		{
			name:     "asterisk marker",
			input:    "* first item\n* second item",
			expected: "• first item\n• second item",
		},
		{
			name:     "plus marker keeps indentation",
			input:    "+ top\n  + nested",
			expected: "• top\n  • nested",
		},
		{
			name:     "bold at line start is not a list",
			input:    "**bold** start",
			expected: "**bold** start",
		},
		{
			name:     "italic at line start is not a list",
			input:    "*italic* start",
			expected: "*italic* start",
		},
		{
			name:     "marker mid line untouched",
			input:    "a - b",
			expected: "a - b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := convertUnorderedLists(tt.input)
			if err != nil {
				t.Fatalf("convertUnorderedLists() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("convertUnorderedLists() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRenumberOrderedLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "arbitrary numbers renumbered",
			input:    "5. a\n9. b\n3. c",
			expected: "1. a\n2. b\n3. c",
		},
		{
			name:     "non-list line restarts numbering",
			input:    "4. a\n7. b\nText\n8. c\n9. d",
			expected: "1. a\n2. b\nText\n1. c\n2. d",
		},
		{
			name:     "blank line keeps the run open",
			input:    "1. a\n\n1. b\n\n1. c",
			expected: "1. a\n\n2. b\n\n3. c",
		},
		{
			name:     "indentation preserved",
			input:    "  3. a\n  3. b",
			expected: "  1. a\n  2. b",
		},
		{
			name:     "extra spaces after marker collapsed",
			input:    "2.   spaced",
			expected: "1. spaced",
		},
		{
			name:     "number without space is not a list",
			input:    "3.14 is pi",
			expected: "3.14 is pi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := renumberOrderedLists(tt.input)
			if err != nil {
				t.Fatalf("renumberOrderedLists() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("renumberOrderedLists() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertEmphasis(t *testing.T) {
	t.Parallel()

	bold := unistyle.ToBold
	italic := unistyle.ToItalic

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold",
			input:    "**Hello**",
			expected: bold("Hello"),
		},
		{
			name:     "italic",
			input:    "*soft*",
			expected: italic("soft"),
		},
		{
			name:     "bold and italic in one sentence",
			input:    "be *calm* and **bold**",
			expected: "be " + italic("calm") + " and " + bold("bold"),
		},
		{
			name:     "triple asterisks preserved",
			input:    "***both***",
			expected: "***both***",
		},
		{
			name:     "italic nested in bold",
			input:    "**very *nice* day**",
			expected: bold("very nice day"),
		},
		{
			name:     "adjacent italic spans",
			input:    "*a* *b*",
			expected: italic("a") + " " + italic("b"),
		},
		{
			name:     "unclosed bold leaves italic alone",
			input:    "**open and *it*",
			expected: "**open and " + italic("it"),
		},
		{
			name:     "span does not cross lines",
			input:    "*one\ntwo*",
			expected: "*one\ntwo*",
		},
		{
			name:     "empty span untouched",
			input:    "a ** b",
			expected: "a ** b",
		},
		{
			name:     "bulleted span untouched",
			input:    "*• item*",
			expected: "*• item*",
		},
		{
			name:     "non-latin italic text keeps its script",
			input:    "*日本語*",
			expected: "日本語",
		},
		{
			name:     "bold digits",
			input:    "**2025**",
			expected: bold("2025"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := convertEmphasis(tt.input)
			if err != nil {
				t.Fatalf("convertEmphasis() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("convertEmphasis() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertHeaders(t *testing.T) {
	t.Parallel()

	bold := unistyle.ToBold

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "h1",
			input:    "# Title",
			expected: bold("Title") + "\n",
		},
		{
			name:     "h2 and h3 collapse to bold",
			input:    "## Sub\n### Small",
			expected: bold("Sub") + "\n\n" + bold("Small") + "\n",
		},
		{
			name:     "h4 untouched",
			input:    "#### Deep",
			expected: "#### Deep",
		},
		{
			name:     "hashtag untouched",
			input:    "#golang rocks",
			expected: "#golang rocks",
		},
		{
			name:     "emoji kept",
			input:    "# 🚀 Launch",
			expected: "🚀 " + bold("Launch") + "\n",
		},
		{
			name:     "trailing spaces trimmed",
			input:    "# Title   ",
			expected: bold("Title") + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := convertHeaders(tt.input)
			if err != nil {
				t.Fatalf("convertHeaders() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("convertHeaders() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertBlockquotes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "marker with space", input: "> wise words", expected: "💭 wise words"},
		{name: "marker without space", input: ">tight", expected: "💭 tight"},
		{name: "multiple lines", input: "> a\n> b", expected: "💭 a\n💭 b"},
		{name: "mid line untouched", input: "a > b", expected: "a > b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := convertBlockquotes(tt.input)
			if err != nil {
				t.Fatalf("convertBlockquotes() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("convertBlockquotes() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "inline link",
			input:    "[Example](https://x.com)",
			expected: "Example (https://x.com)",
		},
		{
			name:     "link in sentence",
			input:    "see [docs](https://go.dev/doc) now",
			expected: "see docs (https://go.dev/doc) now",
		},
		{
			name:     "link with title",
			input:    `[Go](https://go.dev "The Go site")`,
			expected: "Go (https://go.dev)",
		},
		{
			name:     "image with alt",
			input:    "![chart](https://x.com/c.png)",
			expected: "chart (https://x.com/c.png)",
		},
		{
			name:     "empty label",
			input:    "[](https://x.com)",
			expected: "https://x.com",
		},
		{
			name:     "label equals url",
			input:    "[https://x.com](https://x.com)",
			expected: "https://x.com",
		},
		{
			name:     "brackets without url untouched",
			input:    "[not a link]",
			expected: "[not a link]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := convertLinks(tt.input)
			if err != nil {
				t.Fatalf("convertLinks() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("convertLinks() = %q, want %q", got, tt.expected)
			}
		})
	}
}
