// Package linkedinify converts Markdown into plain Unicode text that keeps its
// look when pasted into a LinkedIn post.
//
// # Quick Start
//
// Transcode a string with the default LinkedIn transcoder:
//
//	text := linkedinify.Linkedinify("# Hello\n\nThis is **important**.")
//
// Headers and bold spans become Mathematical Sans-Serif Bold letters, italic
// spans become Sans-Serif Italic letters, lists become bullets or renumbered
// lines, fenced code becomes a framed block and links become "label (url)".
//
// # Conversion Pipeline
//
// The transcoder runs an ordered list of named stages:
//
//  1. Normalization (byte order mark, line endings)
//  2. Code protection (fenced and inline code are shielded from later stages)
//  3. Unordered then ordered lists
//  4. Bold and italic emphasis
//  5. Headers
//  6. Code block frames and inline code
//  7. Blockquotes and links
//  8. Whitespace cleanup
//
// Lists run before emphasis so that "* item" is never read as italic text.
//
// # Failure Policy
//
// Transcoding never fails from the caller's point of view. When a stage errors
// or panics, the original Markdown is returned unchanged. Convert exposes the
// absorbed error in Result.Err, and WithLogger reports it:
//
//	t := linkedinify.NewTranscoder(
//	    linkedinify.WithProfile(linkedinify.ProfileTwitter),
//	    linkedinify.WithLogger(logger),
//	)
//	res := t.Convert(ctx, linkedinify.Input{
//	    Markdown: source,
//	    Hashtags: []string{"golang"},
//	})
//	if res.Err != nil {
//	    // res.Text is the original source
//	}
//
// # Statistics
//
// Analyze counts words, characters, graphemes, UTF-16 code units, lines,
// paragraphs, hashtags and mentions. Validate turns those counts into
// warnings against platform Limits. Styled letters lie outside the Basic
// Multilingual Plane, so each one counts as two characters in the LinkedIn
// composer; the character limit is checked against UTF16Length.
package linkedinify
