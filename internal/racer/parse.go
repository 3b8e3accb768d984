package racer

import (
	"strings"
)

const matchPrefix = "MATCH "

// ParseOutput scans racer stdout for MATCH lines and decodes them in output
// order. Lines without the prefix are ignored. Lines that carry the prefix
// but not enough fields are returned separately so the caller can log them;
// one bad line never discards the rest of the response.
func ParseOutput(command Command, output string) (matches []Match, malformed []string) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, matchPrefix) {
			continue
		}
		rest := line[len(matchPrefix):]

		var match Match
		var ok bool
		if command == CommandComplete {
			match, ok = parseSnippetLine(rest)
		} else {
			match, ok = parseDefinitionLine(rest)
		}
		if !ok {
			malformed = append(malformed, line)
			continue
		}
		matches = append(matches, match)
	}
	return matches, malformed
}

// parseSnippetLine decodes the 7-field ';'-delimited form produced by
// complete-with-snippet: completion;snippet;row;column;path;kind;context.
func parseSnippetLine(rest string) (Match, bool) {
	fields := strings.SplitN(rest, ";", 7)
	if len(fields) < 7 {
		return Match{}, false
	}
	return assembleMatch(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6])
}

// parseDefinitionLine decodes the 6-field ','-delimited form produced by
// find-definition: completion,row,column,path,kind,context. The command has
// no snippet, so an empty one is spliced in to reach the common shape.
func parseDefinitionLine(rest string) (Match, bool) {
	fields := strings.SplitN(rest, ",", 6)
	if len(fields) < 6 {
		return Match{}, false
	}
	return assembleMatch(fields[0], "", fields[1], fields[2], fields[3], fields[4], fields[5])
}

func assembleMatch(completion, snippet, row, column, path, kind, context string) (Match, bool) {
	parsedRow, ok := atoiField(row)
	if !ok {
		return Match{}, false
	}
	parsedColumn, ok := atoiField(column)
	if !ok {
		return Match{}, false
	}
	return Match{
		Completion: completion,
		Snippet:    snippet,
		Row:        parsedRow,
		Column:     parsedColumn,
		Path:       path,
		Kind:       Kind(kind),
		Context:    context,
	}, true
}
