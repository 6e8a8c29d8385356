package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-linkedinify"
	"github.com/alnah/go-linkedinify/internal/pipeline"
)

// runPreview renders a post as sanitized HTML.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parsePreviewFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	cfg, err := loadConfig(flags.common, loadEnvConfig(), env)
	if err != nil {
		return err
	}
	log := newLogger(cfg, flags.common, env.Stderr)

	input, err := singleArg(positional)
	if err != nil {
		return err
	}
	if input == "" && !stdinIsPiped(env) {
		return fmt.Errorf("%w: pass a file or - for stdin", ErrNoInput)
	}
	source, err := readInput(input, env)
	if err != nil {
		return err
	}

	post, err := linkedinify.ParsePost(source)
	if err != nil {
		return err
	}

	tr := linkedinify.NewTranscoder(linkedinify.WithLogger(log))
	fragment, err := tr.Preview(ctx, post.Markdown)
	if err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}

	if input != "" && input != stdinArg {
		if fragment, err = pipeline.RebaseLinks(fragment, filepath.Dir(input)); err != nil {
			return err
		}
	}

	out := fragment
	if !flags.fragment {
		out = pipeline.WrapDocument(previewTitle(post, input), fragment)
	}

	if err := writeOutput(flags.output, []byte(out), env); err != nil {
		return err
	}
	if flags.output != "" && !flags.common.quiet {
		fmt.Fprintf(env.Stderr, "Created %s\n", flags.output)
	}
	return nil
}

// previewTitle uses the front matter title, else the input file name.
func previewTitle(post linkedinify.Post, input string) string {
	if post.Title != "" {
		return post.Title
	}
	if input == "" || input == stdinArg {
		return ""
	}
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
