package main

import (
	"strings"
	"testing"
)

func TestRunHelp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want string
	}{
		{args: nil, want: "Usage: linkedinify <command>"},
		{args: []string{"convert"}, want: "--hashtag"},
		{args: []string{"stats"}, want: "--strict"},
		{args: []string{"preview"}, want: "--fragment"},
		{args: []string{"unstyle"}, want: "plain ASCII"},
		{args: []string{"serve"}, want: "POST /v1/transcode"},
		{args: []string{"completion"}, want: "Supported shells:"},
		{args: []string{"doctor"}, want: "linkedinify doctor [--json]"},
		{args: []string{"version"}, want: "Show version information."},
		{args: []string{"help"}, want: "linkedinify help [command]"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(append([]string{"help"}, tt.args...), " "), func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv("")
			runHelp(tt.args, env)
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("stdout missing %q:\n%s", tt.want, stdout.String())
			}
			if stderr.Len() != 0 {
				t.Errorf("stderr = %q", stderr.String())
			}
		})
	}

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv("")
		runHelp([]string{"publish"}, env)
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "Unknown command: publish") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})
}

// TestPrintUsage_ListsEveryCommand keeps the usage text in sync with the
// command registry.
func TestPrintUsage_ListsEveryCommand(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv("")
	printUsage(env.Stdout)
	for _, c := range commands {
		if !strings.Contains(stdout.String(), "  "+c+" ") {
			t.Errorf("usage does not list %q", c)
		}
	}
}
