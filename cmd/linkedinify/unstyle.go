package main

import (
	"fmt"

	"github.com/alnah/go-linkedinify"
)

// runUnstyle folds styled Unicode letters back to ASCII.
func runUnstyle(args []string, env *Environment) error {
	flags, positional, err := parseUnstyleFlags(args, env.Stderr)
	if err != nil {
		return usageError(err)
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

	return writeOutput(flags.output, []byte(linkedinify.Unstyle(string(source))), env)
}
