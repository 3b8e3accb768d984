package present

import (
	"strings"
	"testing"

	"github.com/ferret-dev/ferret/internal/racer"
)

func match(completion string, kind racer.Kind, context string) racer.Match {
	return racer.Match{
		Completion: completion,
		Snippet:    completion + "_snip",
		Row:        1,
		Column:     1,
		Path:       "/x.rs",
		Kind:       kind,
		Context:    context,
	}
}

func TestRankModuleBeforeEnum(t *testing.T) {
	ranked := Rank([]racer.Match{
		match("e", racer.KindEnum, "enum E"),
		match("m", racer.KindModule, "mod m"),
	})
	if ranked[0].Kind != racer.KindModule || ranked[1].Kind != racer.KindEnum {
		t.Fatalf("expected Module before Enum, got %#v", ranked)
	}
}

func TestRankIsStable(t *testing.T) {
	ranked := Rank([]racer.Match{
		match("b", racer.KindFunction, "fn b()"),
		match("a", racer.KindFunction, "fn a()"),
	})
	if ranked[0].Completion != "b" || ranked[1].Completion != "a" {
		t.Fatalf("equal kinds must keep engine order, got %#v", ranked)
	}
}

func TestRankUnknownKindLast(t *testing.T) {
	ranked := Rank([]racer.Match{
		match("x", racer.Kind("Macro"), "macro x"),
		match("e", racer.KindEnum, "enum E"),
	})
	if ranked[0].Kind != racer.KindEnum {
		t.Fatalf("unknown kind must sort last, got %#v", ranked)
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	input := []racer.Match{
		match("e", racer.KindEnum, "enum E"),
		match("m", racer.KindModule, "mod m"),
	}
	Rank(input)
	if input[0].Kind != racer.KindEnum {
		t.Fatalf("input slice must not be reordered, got %#v", input)
	}
}

func TestFormatAlignsKindLabels(t *testing.T) {
	entries := Format([]racer.Match{
		match("short", racer.KindFunction, "fn short()"),
		match("much_longer_name", racer.KindStruct, "struct L"),
	})
	if len(entries) != 2 {
		t.Fatalf("expected two entries, got %#v", entries)
	}

	// Kind labels end at the same column: completion+kind width is padded
	// to max(len(completion)+len(kind)).
	first := entries[0].Display
	second := entries[1].Display
	firstKindEnd := strings.Index(first, "Function") + len("Function")
	secondKindEnd := strings.Index(second, "Struct") + len("Struct")
	if firstKindEnd != secondKindEnd {
		t.Fatalf("kind labels not aligned:\n%q\n%q", first, second)
	}
}

func TestFormatModuleOmitsContext(t *testing.T) {
	entries := Format([]racer.Match{match("io", racer.KindModule, "mod io")})
	if strings.Contains(entries[0].Display, " : ") {
		t.Fatalf("module rows must not include context, got %q", entries[0].Display)
	}

	entries = Format([]racer.Match{match("foo", racer.KindFunction, "fn foo()")})
	if !strings.Contains(entries[0].Display, " : fn foo()") {
		t.Fatalf("non-module rows must include context, got %q", entries[0].Display)
	}
}

func TestFormatPadsFirstRowTowardLongest(t *testing.T) {
	entries := Format([]racer.Match{
		match("m", racer.KindModule, "mod m"),
		match("a_function_with_a_long_name", racer.KindFunction, "fn a_function_with_a_long_name() -> Result<(), Error>"),
	})

	longest := 0
	for _, entry := range entries {
		if len(entry.Display) > longest {
			longest = len(entry.Display)
		}
	}
	if len(entries[0].Display) < longest-2 {
		t.Fatalf("first row must be padded to within the popup margin of the longest: first=%d longest=%d", len(entries[0].Display), longest)
	}
	if !strings.HasSuffix(entries[0].Display, " ") {
		t.Fatalf("expected trailing pad on first row, got %q", entries[0].Display)
	}
}

func TestFormatSnippetsPairedWithRows(t *testing.T) {
	entries := Format([]racer.Match{
		match("e", racer.KindEnum, "enum E"),
		match("m", racer.KindModule, "mod m"),
	})
	// Ranked order: module first; snippets must travel with their rows.
	if entries[0].Snippet != "m_snip" || entries[1].Snippet != "e_snip" {
		t.Fatalf("snippets must follow ranked rows, got %#v", entries)
	}
}

func TestFormatEmptyInput(t *testing.T) {
	if entries := Format(nil); len(entries) != 0 {
		t.Fatalf("expected no entries, got %#v", entries)
	}
}
