package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alnah/go-linkedinify"
	"github.com/alnah/go-linkedinify/internal/config"
	"github.com/alnah/go-linkedinify/internal/hints"
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string // empty with --stdout
	Text       string
	Profile    linkedinify.Profile
	Warnings   []linkedinify.Warning
	Degraded   error // transcoding failed, Text is the original markdown
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
	}

	// Validate flags early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if flags.profile != "" {
		if _, err := linkedinify.ParseProfile(flags.profile); err != nil {
			return fmt.Errorf("%w%s", err, hints.ForUnknownProfile(profileNames()))
		}
	}

	envCfg := loadEnvConfig()
	cfg, err := loadConfig(flags.common, envCfg, env)
	if err != nil {
		return err
	}
	if flags.workers == 0 {
		flags.workers = envCfg.Workers
	}

	log := newLogger(cfg, flags.common, env.Stderr)
	configureMaxProcs(log)

	set, err := newTranscoderSet(cfg, log)
	if err != nil {
		return err
	}

	input, err := singleArg(positional)
	if err != nil {
		return err
	}
	inputPath, err := resolveInputPath(input, cfg, env)
	if err != nil {
		return err
	}

	if inputPath == stdinArg {
		return convertStdin(ctx, set, flags, env)
	}

	outputDir := resolveOutputDir(flags.output, cfg)
	files, err := discoverFiles(inputPath, outputDir, cfg.Output.Extension)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no markdown files found in %s", ErrNoInput, inputPath)
	}

	workers := resolveWorkers(flags.workers, len(files))
	log.Debug().Int("files", len(files)).Int("workers", workers).Msg("converting")

	results := convertBatch(ctx, set, files, workers, flags)

	failedCount := printResults(results, flags, env)
	if failedCount > 0 {
		return fmt.Errorf("%w: %d of %d", ErrConversionsFailed, failedCount, len(results))
	}
	return nil
}

// resolveInputPath picks the positional input, then input.defaultDir, then
// piped standard input.
func resolveInputPath(arg string, cfg *config.Config, env *Environment) (string, error) {
	if arg != "" {
		return arg, nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	if stdinIsPiped(env) {
		return stdinArg, nil
	}
	return "", fmt.Errorf("%w: pass a file, a directory, or - for stdin", ErrNoInput)
}

// resolveOutputDir returns the --output flag, or output.defaultDir.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// convertStdin transcodes standard input to --output or standard output.
func convertStdin(ctx context.Context, set *transcoderSet, flags *convertFlags, env *Environment) error {
	source, err := readInput(stdinArg, env)
	if err != nil {
		return err
	}

	res, err := convertPost(ctx, set, source, flags)
	if err != nil {
		return err
	}
	reportPost("stdin", res, flags.common.quiet, env)

	output := flags.output
	if flags.stdout {
		output = ""
	}
	return writeOutput(output, []byte(postFile(res.Text)), env)
}

// convertPost parses front matter and transcodes one post.
// The profile is --profile, then front matter, then config.
func convertPost(ctx context.Context, set *transcoderSet, source []byte, flags *convertFlags) (*linkedinify.Result, error) {
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

	input := post.Input()
	input.Hashtags = append(input.Hashtags, flags.hashtags...)
	return tr.Convert(ctx, input), nil
}

// convertBatch processes files concurrently with a fixed number of workers.
// Results keep the order of files.
func convertBatch(ctx context.Context, set *transcoderSet, files []FileToConvert, workers int, flags *convertFlags) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, set, files[idx], flags)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, set *transcoderSet, f FileToConvert, flags *convertFlags) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: f.InputPath}
	if !flags.stdout {
		result.OutputPath = f.OutputPath
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadInput, err)
		result.Duration = time.Since(start)
		return result
	}

	res, err := convertPost(ctx, set, content, flags)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}
	result.Text = res.Text
	result.Warnings = res.Warnings
	result.Degraded = res.Err

	if !flags.stdout {
		if err := writeFile(f.OutputPath, []byte(postFile(res.Text))); err != nil {
			result.Err = err
		}
	}

	result.Duration = time.Since(start)
	return result
}

// postFile terminates non-empty text with a newline.
func postFile(text string) string {
	if text == "" {
		return ""
	}
	return text + "\n"
}

// reportPost prints degraded conversions and limit warnings to stderr.
func reportPost(name string, res *linkedinify.Result, quiet bool, env *Environment) {
	if res.Err != nil {
		fmt.Fprintf(env.Stderr, "warning: %s: %v (original text kept)\n", name, res.Err)
	}
	if quiet {
		return
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(env.Stderr, "warning: %s: %s", name, w.Message)
		if w.Code == linkedinify.ExceedsCharLimit {
			fmt.Fprint(env.Stderr, hints.ForCharLimit())
		}
		fmt.Fprintln(env.Stderr)
	}
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results and returns the failure count.
// With --stdout the posts themselves go to stdout, separated by a blank line.
func printResults(results []ConversionResult, flags *convertFlags, env *Environment) int {
	summary := countResults(results)
	quiet, verbose := flags.common.quiet, flags.common.verbose

	printed := 0
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		reportPost(r.InputPath, &linkedinify.Result{Warnings: r.Warnings, Err: r.Degraded}, quiet, env)

		if flags.stdout {
			if printed > 0 {
				fmt.Fprintln(env.Stdout)
			}
			fmt.Fprint(env.Stdout, postFile(r.Text))
			printed++
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && !flags.stdout && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}

// outputIsFile reports whether --output names a file rather than a directory.
func outputIsFile(output string) bool {
	if filepath.Ext(output) == "" {
		return false
	}
	info, err := os.Stat(output)
	return err != nil || !info.IsDir()
}
