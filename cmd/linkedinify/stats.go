package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alnah/go-linkedinify"
	"github.com/alnah/go-linkedinify/internal/yamlutil"
)

// Stats output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// statsReport is the machine-readable output of the stats command.
type statsReport struct {
	Input    string                `json:"input"`
	Profile  linkedinify.Profile   `json:"profile"`
	Stats    linkedinify.Stats     `json:"stats"`
	Limits   linkedinify.Limits    `json:"limits"`
	Warnings []linkedinify.Warning `json:"warnings"`
}

// runStats transcodes one post and reports its statistics.
func runStats(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseStatsFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	format := strings.ToLower(flags.format)
	switch format {
	case formatText, formatJSON, formatYAML:
	default:
		return fmt.Errorf("%w: %q (must be text, json, or yaml)", ErrInvalidFormat, flags.format)
	}

	cfg, err := loadConfig(flags.common, loadEnvConfig(), env)
	if err != nil {
		return err
	}
	set, err := newTranscoderSet(cfg, newLogger(cfg, flags.common, env.Stderr))
	if err != nil {
		return err
	}

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

	report, err := buildStatsReport(ctx, set, source, flags)
	if err != nil {
		return err
	}
	report.Input = input
	if report.Input == "" {
		report.Input = stdinArg
	}

	if err := writeStatsReport(env.Stdout, report, format); err != nil {
		return err
	}

	if flags.strict && len(report.Warnings) > 0 {
		return fmt.Errorf("%w: %d warning(s)", ErrLimitsExceeded, len(report.Warnings))
	}
	return nil
}

// buildStatsReport analyzes the transcoded post, or the source itself
// with --raw.
func buildStatsReport(ctx context.Context, set *transcoderSet, source []byte, flags *statsFlags) (*statsReport, error) {
	if flags.raw {
		tr, err := set.get(flags.profile)
		if err != nil {
			return nil, err
		}
		stats := linkedinify.Analyze(string(source))
		return &statsReport{
			Profile:  tr.Profile(),
			Stats:    stats,
			Limits:   tr.Limits(),
			Warnings: nonNilWarnings(linkedinify.Validate(stats, tr.Limits())),
		}, nil
	}

	post, err := linkedinify.ParsePost(source)
	if err != nil {
		return nil, err
	}
	name := flags.profile
	if name == "" {
		name = post.Profile
	}
	tr, err := set.get(name)
	if err != nil {
		return nil, err
	}

	res := tr.Convert(ctx, post.Input())
	return &statsReport{
		Profile:  tr.Profile(),
		Stats:    res.Stats,
		Limits:   tr.Limits(),
		Warnings: nonNilWarnings(res.Warnings),
	}, nil
}

func nonNilWarnings(w []linkedinify.Warning) []linkedinify.Warning {
	if w == nil {
		return []linkedinify.Warning{}
	}
	return w
}

// writeStatsReport renders report in the given format.
func writeStatsReport(w io.Writer, report *statsReport, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case formatYAML:
		out, err := yamlutil.Marshal(report)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	default:
		return writeStatsText(w, report)
	}
}

func writeStatsText(w io.Writer, r *statsReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	s := r.Stats

	fmt.Fprintf(tw, "Input:\t%s\n", r.Input)
	fmt.Fprintf(tw, "Profile:\t%s\n", r.Profile)
	fmt.Fprintf(tw, "Characters:\t%d\t(limit %s, counted in UTF-16 units: %d)\n", s.Characters, limitString(r.Limits.MaxChars), s.UTF16Length)
	fmt.Fprintf(tw, "Without spaces:\t%d\n", s.CharactersNoSpaces)
	fmt.Fprintf(tw, "Graphemes:\t%d\n", s.Graphemes)
	fmt.Fprintf(tw, "Words:\t%d\n", s.Words)
	fmt.Fprintf(tw, "Lines:\t%d\n", s.Lines)
	fmt.Fprintf(tw, "Paragraphs:\t%d\n", s.Paragraphs)
	fmt.Fprintf(tw, "Hashtags:\t%d\t(limit %s)\n", s.Hashtags, limitString(r.Limits.MaxHashtags))
	fmt.Fprintf(tw, "Mentions:\t%d\t(limit %s)\n", s.Mentions, limitString(r.Limits.MaxMentions))
	fmt.Fprintf(tw, "Reading time:\t%d min\n", s.ReadingMinutes)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(r.Warnings) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Warnings:")
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "  [WARN] %s\n", warn.Message)
	}
	return nil
}

// limitString formats a limit, where zero means unlimited.
func limitString(n int) string {
	if n == 0 {
		return "none"
	}
	return fmt.Sprint(n)
}
