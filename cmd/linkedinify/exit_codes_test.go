package main

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/alnah/go-linkedinify"
	"github.com/alnah/go-linkedinify/internal/config"
	"github.com/alnah/go-linkedinify/internal/fileutil"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "not found", err: &fs.PathError{Op: "open", Path: "x.md", Err: fs.ErrNotExist}, want: ExitIO},
		{name: "permission", err: fmt.Errorf("%w: %w", ErrWriteOutput, fs.ErrPermission), want: ExitIO},
		{name: "read input", err: ErrReadInput, want: ExitIO},
		{name: "no input", err: fmt.Errorf("%w: empty dir", ErrNoInput), want: ExitIO},
		{name: "config not found", err: fmt.Errorf("loading config: %w", config.ErrConfigNotFound), want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "invalid config value", err: config.ErrInvalidValue, want: ExitUsage},
		{name: "extension traversal", err: fileutil.ErrExtensionPathTraversal, want: ExitUsage},
		{name: "unknown profile", err: fmt.Errorf("%w: %q", linkedinify.ErrUnknownProfile, "x"), want: ExitUsage},
		{name: "front matter", err: linkedinify.ErrInvalidFrontMatter, want: ExitUsage},
		{name: "workers", err: ErrInvalidWorkerCount, want: ExitUsage},
		{name: "format", err: ErrInvalidFormat, want: ExitUsage},
		{name: "usage", err: usageError(errors.New("unknown flag: --x")), want: ExitUsage},
		{name: "shell", err: ErrUnsupportedShell, want: ExitUsage},
		{name: "limits exceeded", err: ErrLimitsExceeded, want: ExitGeneral},
		{name: "conversions failed", err: ErrConversionsFailed, want: ExitGeneral},
		{name: "unexpected", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
