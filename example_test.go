package linkedinify_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-linkedinify"
)

// Example transcodes a short post with the default LinkedIn profile.
func Example() {
	markdown := "# Launch day\n\n" +
		"Read **the docs**, *really*.\n\n" +
		"* first\n* second\n\n" +
		"[Go](https://go.dev)"

	fmt.Println(linkedinify.Linkedinify(markdown))
	// Output:
	// 𝗟𝗮𝘂𝗻𝗰𝗵 𝗱𝗮𝘆
	//
	// Read 𝘁𝗵𝗲 𝗱𝗼𝗰𝘀, 𝘳𝘦𝘢𝘭𝘭𝘺.
	//
	// • first
	// • second
	//
	// Go (https://go.dev)
}

// ExampleTranscoder_Convert appends hashtags and reports statistics.
func ExampleTranscoder_Convert() {
	t := linkedinify.NewTranscoder()

	res := t.Convert(context.Background(), linkedinify.Input{
		Markdown: "Shipping `v2` today, thanks @ana!",
		Hashtags: []string{"golang", "release"},
	})
	if res.Err != nil {
		fmt.Println("error:", res.Err)
		return
	}

	fmt.Println(res.Text)
	fmt.Println("words:", res.Stats.Words, "hashtags:", res.Stats.Hashtags, "mentions:", res.Stats.Mentions)
	fmt.Println("warnings:", len(res.Warnings))
	// Output:
	// Shipping v2 today, thanks @ana!
	//
	// #golang #release
	// words: 7 hashtags: 2 mentions: 1
	// warnings: 0
}

// ExampleTranscoder_Convert_twitter truncates to the Twitter limit.
func ExampleTranscoder_Convert_twitter() {
	t := linkedinify.NewTranscoder(linkedinify.WithProfile(linkedinify.ProfileTwitter))

	res := t.Convert(context.Background(), linkedinify.Input{
		Markdown: strings.Repeat("lorem ", 60),
	})
	fmt.Println(res.Stats.UTF16Length <= 280, len(res.Warnings))
	// Output: true 0
}

func ExampleUnstyle() {
	styled := linkedinify.ToBoldUnicode("Release 2")
	fmt.Println(styled)
	fmt.Println(linkedinify.Unstyle(styled))
	// Output:
	// 𝗥𝗲𝗹𝗲𝗮𝘀𝗲 𝟮
	// Release 2
}

func ExampleValidate() {
	stats := linkedinify.Stats{UTF16Length: 3200, Hashtags: 4}
	for _, w := range linkedinify.Validate(stats, linkedinify.DefaultLimits()) {
		fmt.Println(w.Code, w)
	}
	// Output: exceeds_char_limit post is 3200 characters long, limit is 3000
}
