package linkedinify

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-linkedinify/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.Transcoder    = (*pipeline.Pipeline)(nil)
	_ pipeline.HTMLConverter = (*pipeline.GoldmarkConverter)(nil)
)

// Input contains transcoding parameters.
type Input struct {
	Markdown string   // Markdown source (empty yields empty output)
	Hashtags []string // appended as a final paragraph (optional)
}

// Result is the outcome of a conversion.
type Result struct {
	Text     string
	Stats    Stats
	Warnings []Warning

	// Err records a transcoding failure that was absorbed: Text then holds
	// the original Markdown unchanged.
	Err error
}

// Transcoder turns Markdown into plain Unicode text for social posts.
// A Transcoder holds only immutable configuration and is safe for
// concurrent use.
type Transcoder struct {
	profile       Profile
	limits        Limits
	logger        zerolog.Logger
	pipeline      pipeline.Transcoder
	htmlConverter pipeline.HTMLConverter
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithProfile sets the target profile.
// Panics on an unknown profile (programmer error); use ParseProfile for
// user-supplied names.
func WithProfile(p Profile) Option {
	parsed, err := ParseProfile(string(p))
	if err != nil {
		panic("linkedinify: WithProfile unknown profile " + string(p))
	}
	return func(t *Transcoder) {
		t.profile = parsed
		t.limits = parsed.Limits()
	}
}

// WithLimits overrides the profile limits used by Convert.
func WithLimits(l Limits) Option {
	return func(t *Transcoder) {
		t.limits = l
	}
}

// WithLogger sets the logger used to report absorbed failures.
// The default logger discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(t *Transcoder) {
		t.logger = l
	}
}

// withPipeline replaces the stage pipeline (tests).
func withPipeline(p pipeline.Transcoder) Option {
	return func(t *Transcoder) {
		t.pipeline = p
	}
}

// withHTMLConverter replaces the preview renderer (tests).
func withHTMLConverter(c pipeline.HTMLConverter) Option {
	return func(t *Transcoder) {
		t.htmlConverter = c
	}
}

// NewTranscoder creates a Transcoder for the LinkedIn profile unless
// configured otherwise.
func NewTranscoder(opts ...Option) *Transcoder {
	t := &Transcoder{
		profile:  DefaultProfile,
		limits:   DefaultProfile.Limits(),
		logger:   zerolog.Nop(),
		pipeline: pipeline.Default(),
	}

	for _, opt := range opts {
		opt(t)
	}

	if t.htmlConverter == nil {
		t.htmlConverter = pipeline.NewGoldmarkConverter()
	}

	return t
}

var defaultTranscoder = NewTranscoder()

// Linkedinify transcodes markdown with the default LinkedIn transcoder.
// It never fails: on an internal error it returns markdown unchanged.
func Linkedinify(markdown string) string {
	return defaultTranscoder.Transcode(markdown)
}

// Profile returns the target profile.
func (t *Transcoder) Profile() Profile {
	return t.profile
}

// Limits returns the limits Convert validates against.
func (t *Transcoder) Limits() Limits {
	return t.limits
}

// Transcode converts markdown to post text. Empty or whitespace-only input
// yields "". On an internal error it returns markdown unchanged.
func (t *Transcoder) Transcode(markdown string) string {
	text, _ := t.transcode(context.Background(), markdown, nil)
	return text
}

// Convert transcodes input, appends its hashtags and reports statistics
// and limit warnings for the resulting text.
func (t *Transcoder) Convert(ctx context.Context, input Input) *Result {
	text, err := t.transcode(ctx, input.Markdown, input.Hashtags)
	stats := Analyze(text)
	return &Result{
		Text:     text,
		Stats:    stats,
		Warnings: Validate(stats, t.limits),
		Err:      err,
	}
}

// Preview renders markdown as a sanitized HTML fragment.
func (t *Transcoder) Preview(ctx context.Context, markdown string) (string, error) {
	return t.htmlConverter.ToHTML(ctx, markdown)
}

func (t *Transcoder) transcode(ctx context.Context, markdown string, hashtags []string) (string, error) {
	text, err := t.pipeline.Run(ctx, markdown)
	if err != nil {
		t.logger.Warn().
			Err(err).
			Str("profile", string(t.profile)).
			Int("bytes", len(markdown)).
			Msg("transcoding failed, returning original text")
		return markdown, fmt.Errorf("%w: %w", ErrTranscode, err)
	}
	if text == "" {
		return "", nil
	}

	if tags := pipeline.NormalizeHashtags(hashtags); len(tags) > 0 {
		text += "\n\n" + strings.Join(tags, " ")
	}

	out := t.profile.shape(text, t.limits)
	t.logger.Debug().
		Str("profile", string(t.profile)).
		Int("inputBytes", len(markdown)).
		Int("outputBytes", len(out)).
		Msg("transcoded")

	return out, nil
}
