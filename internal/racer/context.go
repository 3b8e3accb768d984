package racer

import (
	"path/filepath"
	"strings"
)

const (
	rustExtension = ".rs"
	transientName = "_transient.rs"

	// SentinelPath is handed to racer when no plausible on-disk location
	// exists. Racer never reads it because buffer content always arrives on
	// stdin via the substitute-file argument.
	SentinelPath = "-"
)

// ResolveContextPath picks the path presented to racer as its primary input
// argument. The path only has to be plausible, not real: racer uses it to
// discover the Cargo root for module lookups.
//
// A saved buffer wins outright. An unsaved buffer borrows a "_transient.rs"
// sibling from whichever directory holds the most open Rust files; ties go
// to the directory seen first in openPaths. With no open Rust files the
// sentinel "-" is returned.
func ResolveContextPath(activePath string, openPaths []string) string {
	if activePath != "" {
		return activePath
	}

	counts := make(map[string]int)
	order := make([]string, 0, len(openPaths))
	for _, path := range openPaths {
		if !strings.HasSuffix(path, rustExtension) {
			continue
		}
		candidate := filepath.Join(filepath.Dir(path), transientName)
		if counts[candidate] == 0 {
			order = append(order, candidate)
		}
		counts[candidate]++
	}

	if len(order) == 0 {
		return SentinelPath
	}

	best := order[0]
	for _, candidate := range order[1:] {
		if counts[candidate] > counts[best] {
			best = candidate
		}
	}
	return best
}
