// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"

	"github.com/alnah/go-linkedinify/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForListen returns hints for a server that cannot be reached or bound.
// Inside containers a loopback address is unreachable from the host.
func ForListen(addr string) string {
	var hints []string

	host := addr
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		host = addr[:i]
	}
	if IsInContainer() && (host == "127.0.0.1" || host == "localhost") {
		hints = append(hints, "inside a container, listen on all interfaces (--addr :8080)")
	}
	hints = append(hints, "use --addr or LINKEDINIFY_ADDR to pick a free port")

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-linkedinify/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-linkedinify") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInvalidExtension returns hints for non-Markdown inputs.
func ForInvalidExtension() string {
	return format("pass a .md or .markdown file, a directory, or - for stdin")
}

// ForUnknownProfile returns hints listing the available profiles.
func ForUnknownProfile(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForCharLimit returns hints for posts over the character limit.
func ForCharLimit() string {
	return formatHints([]string{
		"styled letters count as two characters",
		"shorten the post or use fewer bold/italic spans",
	})
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
