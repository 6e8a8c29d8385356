package linkedinify

import (
	"errors"

	"github.com/alnah/go-linkedinify/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrTranscode          = errors.New("transcoding failed")
	ErrUnknownProfile     = errors.New("unknown profile")
	ErrInvalidFrontMatter = errors.New("invalid front matter")

	// ErrHTMLConversion is returned when the HTML preview cannot be rendered.
	ErrHTMLConversion = pipeline.ErrHTMLConversion
)
