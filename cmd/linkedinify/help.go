package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: linkedinify <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown posts to LinkedIn text")
	fmt.Fprintln(w, "  stats       Show post statistics and limit warnings")
	fmt.Fprintln(w, "  preview     Render markdown as an HTML preview")
	fmt.Fprintln(w, "  unstyle     Fold styled Unicode back to plain text")
	fmt.Fprintln(w, "  serve       Run the HTTP service")
	fmt.Fprintln(w, "  doctor      Check configuration and environment")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'linkedinify help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: linkedinify convert [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown posts to plain Unicode text for LinkedIn.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory, or - for stdin")
	fmt.Fprintln(w, "           (optional if config has input.defaultDir; stdin if piped)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "      --stdout              Print posts instead of writing files")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Post:")
	fmt.Fprintln(w, "  -p, --profile <s>         Target profile: linkedin, twitter")
	fmt.Fprintln(w, "  -t, --hashtag <s>         Hashtag appended to every post (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Front matter (optional, per file):")
	fmt.Fprintln(w, "  ---")
	fmt.Fprintln(w, "  profile: twitter")
	fmt.Fprintln(w, "  hashtags: [golang, opensource]")
	fmt.Fprintln(w, "  ---")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
}

// printStatsUsage prints usage for the stats command.
func printStatsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: linkedinify stats [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Transcode a post and report its statistics and limit warnings.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, json, yaml")
	fmt.Fprintln(w, "  -p, --profile <s>         Target profile: linkedin, twitter")
	fmt.Fprintln(w, "      --raw                 Analyze the input as-is, without transcoding")
	fmt.Fprintln(w, "      --strict              Exit with status 1 when a limit is exceeded")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// printPreviewUsage prints usage for the preview command.
func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: linkedinify preview [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown as a sanitized HTML page.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output HTML file (default: stdout)")
	fmt.Fprintln(w, "      --fragment            Omit the HTML document wrapper")
}

// printUnstyleUsage prints usage for the unstyle command.
func printUnstyleUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: linkedinify unstyle [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Fold bold and italic Unicode letters back to plain ASCII.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: linkedinify serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run the HTTP service.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Endpoints:")
	fmt.Fprintln(w, "  GET  /healthz")
	fmt.Fprintln(w, "  POST /v1/transcode   {\"markdown\", \"profile\", \"hashtags\"}")
	fmt.Fprintln(w, "  POST /v1/preview     {\"markdown\"}")
	fmt.Fprintln(w, "  POST /v1/stats       {\"text\", \"profile\"}")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -a, --addr <addr>         Listen address (default: :8080)")
	fmt.Fprintln(w, "  -p, --profile <s>         Default profile: linkedin, twitter")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "stats":
		printStatsUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "unstyle":
		printUnstyleUsage(env.Stdout)
	case "serve":
		printServeUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: linkedinify doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check configuration, environment variables and output directories.")
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: linkedinify version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: linkedinify help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
