package nav

import (
	"regexp"

	"github.com/ferret-dev/ferret/internal/racer"
)

// Target is a navigation destination: a 1-based position in a file.
type Target struct {
	Path   string `json:"path"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
}

var drivePattern = regexp.MustCompile(`^[A-Za-z]:`)

// NormalizePath fixes up engine-reported paths for the target platform.
// On Windows racer omits the drive letter, so one is prefixed when the path
// does not already carry `<letter>:`. Other platforms pass through.
func NormalizePath(path string, goos string) string {
	if goos == "windows" && !drivePattern.MatchString(path) {
		return "c:" + path
	}
	return path
}

// ResolveTarget turns definition matches into a single navigation target.
// Zero matches means nothing to jump to; more than one is ambiguous and
// also yields no target, leaving any picker UI policy to the caller.
func ResolveTarget(matches []racer.Match, goos string) (Target, bool) {
	if len(matches) != 1 {
		return Target{}, false
	}
	match := matches[0]
	return Target{
		Path:   NormalizePath(match.Path, goos),
		Row:    match.Row,
		Column: match.Column,
	}, true
}
