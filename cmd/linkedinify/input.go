package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alnah/go-linkedinify/internal/fileutil"
	"github.com/alnah/go-linkedinify/internal/hints"
)

// stdinArg names standard input on the command line.
const stdinArg = "-"

// maxStdinBytes bounds what is read from standard input.
const maxStdinBytes = 16 << 20

// singleArg returns the only positional argument, or "" when there is none.
func singleArg(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("%w: expected at most one input, got %d", ErrUsage, len(args))
	}
}

// stdinIsPiped reports whether env.Stdin is a pipe or file rather than a
// terminal. Non-file readers (tests) count as piped.
func stdinIsPiped(env *Environment) bool {
	f, ok := env.Stdin.(*os.File)
	if !ok {
		return env.Stdin != nil
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// readInput reads path, or standard input for "" and "-".
func readInput(path string, env *Environment) ([]byte, error) {
	if path == "" || path == stdinArg {
		if env.Stdin == nil {
			return nil, ErrNoInput
		}
		data, err := io.ReadAll(io.LimitReader(env.Stdin, maxStdinBytes))
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}

// writeOutput writes data to path atomically, or to env.Stdout for "".
func writeOutput(path string, data []byte, env *Environment) error {
	if path == "" {
		if _, err := env.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: stdout: %v", ErrWriteOutput, err)
		}
		return nil
	}
	return writeFile(path, data)
}

// writeFile writes data to path atomically, creating parent directories.
func writeFile(path string, data []byte) error {
	if err := fileutil.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %w%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	return nil
}

// isMarkdownPath reports whether path has a Markdown extension.
func isMarkdownPath(path string) bool {
	return fileutil.IsMarkdown(path)
}
