// Package stacktrace condenses raw goroutine stacks into the frames that
// belong to this repository, keeping panic logs readable.
package stacktrace

import "strings"

// InternalPaths extracts "internal/...go:line" frames from a raw stack trace.
func InternalPaths(stack []byte) []string {
	lines := strings.Split(string(stack), "\n")

	paths := make([]string, 0, len(lines))
	for i := 0; i+1 < len(lines); i++ {
		line := strings.TrimSpace(lines[i+1])
		if !strings.Contains(line, "/internal/") || !strings.Contains(line, ".go:") {
			continue
		}

		end := strings.Index(line, ".go:")
		rest := line[end:]
		if sp := strings.Index(rest, " "); sp != -1 {
			line = line[:end+sp]
		}

		if idx := strings.Index(line, "/internal/"); idx != -1 {
			paths = append(paths, line[idx+1:])
		}
	}

	return paths
}
