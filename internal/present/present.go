package present

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ferret-dev/ferret/internal/racer"
)

// popupMargin shrinks the trailing pad on the first row; the host popup
// already adds a couple of columns of chrome.
const popupMargin = 2

// Entry is one display row for the completion popup paired with the snippet
// inserted on selection.
type Entry struct {
	Display string `json:"display"`
	Snippet string `json:"snippet"`
}

// Rank orders matches by kind priority (Module first, unknown kinds last).
// The sort is stable: matches of equal kind keep engine output order.
func Rank(matches []racer.Match) []racer.Match {
	ranked := make([]racer.Match, len(matches))
	copy(ranked, matches)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Kind.Priority() < ranked[j].Kind.Priority()
	})
	return ranked
}

// Format ranks matches and renders aligned display rows. The kind label is
// right-aligned to a shared column, and the context description follows for
// everything except modules. The first row is padded with trailing spaces
// toward the longest row so the popup opens wide enough for all entries.
func Format(matches []racer.Match) []Entry {
	ranked := Rank(matches)

	align := 0
	for _, match := range ranked {
		if width := len(match.Completion) + len(match.Kind); width > align {
			align = width
		}
	}

	entries := make([]Entry, 0, len(ranked))
	longest := 0
	for _, match := range ranked {
		context := ""
		if match.Kind != racer.KindModule {
			context = " : " + match.Context
		}
		display := fmt.Sprintf("%s   %*s%s", match.Completion, align-len(match.Completion), string(match.Kind), context)
		if len(display) > longest {
			longest = len(display)
		}
		entries = append(entries, Entry{Display: display, Snippet: match.Snippet})
	}

	if len(entries) > 0 {
		if pad := longest - len(entries[0].Display) - popupMargin; pad > 0 {
			entries[0].Display += strings.Repeat(" ", pad)
		}
	}
	return entries
}
