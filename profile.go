package linkedinify

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// Profile selects the target platform of a transcoded post.
type Profile string

// Supported profiles.
const (
	ProfileLinkedIn Profile = "linkedin"
	ProfileTwitter  Profile = "twitter"
)

// DefaultProfile is used when no profile is given.
const DefaultProfile = ProfileLinkedIn

// ellipsis marks a truncated post.
const ellipsis = "…"

// ParseProfile resolves a profile name (case-insensitive).
// An empty name yields DefaultProfile.
func ParseProfile(name string) (Profile, error) {
	switch p := Profile(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DefaultProfile, nil
	case ProfileLinkedIn, ProfileTwitter:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q (must be linkedin or twitter)", ErrUnknownProfile, name)
	}
}

// Profiles lists the supported profile names.
func Profiles() []Profile {
	return []Profile{ProfileLinkedIn, ProfileTwitter}
}

// Limits returns the platform limits of the profile.
func (p Profile) Limits() Limits {
	switch p {
	case ProfileTwitter:
		return Limits{MaxChars: 280, MaxHashtags: DefaultMaxHashtags, MaxMentions: DefaultMaxMentions}
	default:
		return DefaultLimits()
	}
}

// truncates reports whether the profile cuts overlong posts.
func (p Profile) truncates() bool {
	return p == ProfileTwitter
}

// shape applies profile-specific post-processing to transcoded text.
func (p Profile) shape(text string, limits Limits) string {
	if !p.truncates() {
		return text
	}
	return truncate(text, limits.MaxChars)
}

// truncate cuts text at a grapheme boundary so that the result, ellipsis
// included, fits in max UTF-16 code units.
func truncate(text string, max int) string {
	if max <= 0 || utf16Len(text) <= max {
		return text
	}

	budget := max - utf16Len(ellipsis)
	var b strings.Builder
	used := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		n := utf16Len(cluster)
		if used+n > budget {
			break
		}
		b.WriteString(cluster)
		used += n
	}

	return strings.TrimRightFunc(b.String(), unicode.IsSpace) + ellipsis
}

// utf16Len counts UTF-16 code units, the unit social composers count in.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
