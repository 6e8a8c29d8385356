package linkedinify

import (
	"fmt"

	"github.com/alnah/go-linkedinify/internal/pipeline"
)

// Post is a Markdown post file split into its front matter and body.
type Post struct {
	Title    string
	Profile  string   // raw profile name, resolve with ParseProfile
	Hashtags []string // normalized, each with a leading '#'
	Markdown string
}

// ParsePost reads an optional YAML front matter block:
//
//	---
//	title: Release notes
//	profile: twitter
//	hashtags: [golang, opensource]
//	---
//
// Sources without front matter become a Post with only Markdown set.
func ParsePost(source []byte) (Post, error) {
	meta, body, err := pipeline.SplitFrontMatter(source)
	if err != nil {
		return Post{}, fmt.Errorf("%w: %w", ErrInvalidFrontMatter, err)
	}
	return Post{
		Title:    meta.Title,
		Profile:  meta.Profile,
		Hashtags: meta.Hashtags,
		Markdown: string(body),
	}, nil
}

// Input returns the transcoding input of the post.
func (p Post) Input() Input {
	return Input{Markdown: p.Markdown, Hashtags: p.Hashtags}
}
