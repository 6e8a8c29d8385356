package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// MaxWorkers caps --workers.
const MaxWorkers = 64

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common   commonFlags
	output   string
	profile  string
	hashtags []string
	stdout   bool
	workers  int
}

// statsFlags holds flags for the stats command.
type statsFlags struct {
	common  commonFlags
	profile string
	format  string
	raw     bool
	strict  bool
}

// previewFlags holds flags for the preview command.
type previewFlags struct {
	common   commonFlags
	output   string
	fragment bool
}

// unstyleFlags holds flags for the unstyle command.
type unstyleFlags struct {
	output string
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	common  commonFlags
	addr    string
	profile string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addProfileFlag adds --profile to a FlagSet.
func addProfileFlag(fs *flag.FlagSet, p *string) {
	fs.StringVarP(p, "profile", "p", "", "target profile: linkedin, twitter")
}

// newFlagSet creates a FlagSet that reports errors and usage to w.
func newFlagSet(name string, w io.Writer, usage func(io.Writer)) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	return fs
}

// buildConvertFlagSet registers the convert flags into f.
func buildConvertFlagSet(w io.Writer, f *convertFlags) *flag.FlagSet {
	fs := newFlagSet("convert", w, printConvertUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.stdout, "stdout", false, "print posts instead of writing files")
	fs.StringSliceVarP(&f.hashtags, "hashtag", "t", nil, "hashtag appended to every post (repeatable)")
	addProfileFlag(fs, &f.profile)
	addCommonFlags(fs, &f.common)
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string, w io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := buildConvertFlagSet(w, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func buildStatsFlagSet(w io.Writer, f *statsFlags) *flag.FlagSet {
	fs := newFlagSet("stats", w, printStatsUsage)
	fs.StringVarP(&f.format, "format", "f", "text", "output format: text, json, yaml")
	fs.BoolVar(&f.raw, "raw", false, "analyze the input as-is, without transcoding")
	fs.BoolVar(&f.strict, "strict", false, "exit with status 1 when a limit is exceeded")
	addProfileFlag(fs, &f.profile)
	addCommonFlags(fs, &f.common)
	return fs
}

func parseStatsFlags(args []string, w io.Writer) (*statsFlags, []string, error) {
	f := &statsFlags{}
	fs := buildStatsFlagSet(w, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func buildPreviewFlagSet(w io.Writer, f *previewFlags) *flag.FlagSet {
	fs := newFlagSet("preview", w, printPreviewUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output HTML file (default: stdout)")
	fs.BoolVar(&f.fragment, "fragment", false, "print the HTML fragment without a document wrapper")
	addCommonFlags(fs, &f.common)
	return fs
}

func parsePreviewFlags(args []string, w io.Writer) (*previewFlags, []string, error) {
	f := &previewFlags{}
	fs := buildPreviewFlagSet(w, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func buildUnstyleFlagSet(w io.Writer, f *unstyleFlags) *flag.FlagSet {
	fs := newFlagSet("unstyle", w, printUnstyleUsage)
	fs.StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	return fs
}

func parseUnstyleFlags(args []string, w io.Writer) (*unstyleFlags, []string, error) {
	f := &unstyleFlags{}
	fs := buildUnstyleFlagSet(w, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func buildServeFlagSet(w io.Writer, f *serveFlags) *flag.FlagSet {
	fs := newFlagSet("serve", w, printServeUsage)
	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (default: :8080)")
	addProfileFlag(fs, &f.profile)
	addCommonFlags(fs, &f.common)
	return fs
}

func parseServeFlags(args []string, w io.Writer) (*serveFlags, []string, error) {
	f := &serveFlags{}
	fs := buildServeFlagSet(w, f)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
