package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// commands lists the subcommand names.
var commands = []string{"convert", "stats", "preview", "unstyle", "serve", "doctor", "completion", "version", "help"}

// isCommand reports whether name is a subcommand.
func isCommand(name string) bool {
	for _, c := range commands {
		if c == name {
			return true
		}
	}
	return false
}

// runMain dispatches args[1] and returns the process exit code.
// A first argument that is not a command but looks like a Markdown file
// (or "-") is treated as "convert <file>".
func runMain(args []string, env *Environment) int {
	loadDotEnv(env)
	warnUnknownEnvVars(env.Stderr)

	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		if !looksLikeInput(cmd) {
			fmt.Fprintf(env.Stderr, "unknown command: %s\n\n", cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
		cmd, rest = "convert", args[1:]
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	var err error
	switch cmd {
	case "convert":
		err = runConvert(ctx, rest, env)
	case "stats":
		err = runStats(ctx, rest, env)
	case "preview":
		err = runPreview(ctx, rest, env)
	case "unstyle":
		err = runUnstyle(rest, env)
	case "serve":
		err = runServe(ctx, rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "go-linkedinify %s\n", env.Version)
	case "help":
		runHelp(rest, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, "error:", err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// looksLikeInput reports whether arg names stdin or a Markdown file.
func looksLikeInput(arg string) bool {
	return arg == "-" || isMarkdownPath(arg)
}
