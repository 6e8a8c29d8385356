package pipeline

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// PostMeta is the optional YAML header of a post file.
type PostMeta struct {
	Title    string   `yaml:"title"`
	Profile  string   `yaml:"profile"`
	Hashtags []string `yaml:"hashtags"`
}

// SplitFrontMatter extracts post metadata and returns the Markdown body
// without delimiters. Sources without front matter are returned whole.
func SplitFrontMatter(source []byte) (PostMeta, []byte, error) {
	var meta PostMeta

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return PostMeta{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	meta.Hashtags = NormalizeHashtags(meta.Hashtags)
	return meta, body, nil
}

// NormalizeHashtags trims tags, adds the leading '#', joins words and drops
// empties and duplicates while keeping order.
func NormalizeHashtags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.Join(strings.Fields(strings.TrimLeft(strings.TrimSpace(tag), "#")), "")
		if tag == "" {
			continue
		}
		tag = "#" + tag
		key := strings.ToLower(tag)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tag)
	}
	return out
}
