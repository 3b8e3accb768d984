package racer

import (
	"os"
	"strings"
)

// SearchPathEnv is the environment variable racer consults for Rust source
// roots (typically the rust std library checkout).
const SearchPathEnv = "RUST_SRC_PATH"

// BuildEnv duplicates base and overrides SearchPathEnv with the configured
// search paths, tilde-expanded, joined with the platform list separator.
// Any pre-existing value is appended after the configured paths so user
// configuration takes precedence while system defaults stay reachable.
func BuildEnv(base []string, searchPaths []string) []string {
	expanded := make([]string, 0, len(searchPaths)+1)
	for _, path := range searchPaths {
		expanded = append(expanded, expandTilde(path))
	}

	env := make([]string, 0, len(base)+1)
	for _, entry := range base {
		if key, value, found := strings.Cut(entry, "="); found && key == SearchPathEnv {
			if value != "" {
				expanded = append(expanded, value)
			}
			continue
		}
		env = append(env, entry)
	}

	joined := strings.Join(expanded, string(os.PathListSeparator))
	return append(env, SearchPathEnv+"="+joined)
}

func expandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return home + path[1:]
}
