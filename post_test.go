package linkedinify

import (
	"errors"
	"slices"
	"testing"
)

func TestParsePost(t *testing.T) {
	t.Parallel()

	source := "---\ntitle: Launch\nprofile: twitter\nhashtags: [golang, open source]\n---\n**Shipped**\n"
	post, err := ParsePost([]byte(source))
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}

	if post.Title != "Launch" || post.Profile != "twitter" {
		t.Errorf("ParsePost() = %+v", post)
	}
	if want := []string{"#golang", "#opensource"}; !slices.Equal(post.Hashtags, want) {
		t.Errorf("ParsePost().Hashtags = %v, want %v", post.Hashtags, want)
	}
	if post.Markdown != "**Shipped**\n" {
		t.Errorf("ParsePost().Markdown = %q", post.Markdown)
	}

	in := post.Input()
	if in.Markdown != post.Markdown || !slices.Equal(in.Hashtags, post.Hashtags) {
		t.Errorf("Post.Input() = %+v", in)
	}
}

func TestParsePost_NoFrontMatter(t *testing.T) {
	t.Parallel()

	post, err := ParsePost([]byte("just text"))
	if err != nil {
		t.Fatalf("ParsePost() error = %v", err)
	}
	if post.Markdown != "just text" || post.Hashtags != nil {
		t.Errorf("ParsePost() = %+v", post)
	}
}

func TestParsePost_Invalid(t *testing.T) {
	t.Parallel()

	_, err := ParsePost([]byte("---\nhashtags: [unclosed\n---\nbody"))
	if !errors.Is(err, ErrInvalidFrontMatter) {
		t.Errorf("ParsePost() error = %v, want ErrInvalidFrontMatter", err)
	}
}
