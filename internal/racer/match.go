package racer

import "strconv"

// Kind classifies a racer match by the label racer prints in its output.
// Labels outside the known set are kept verbatim and rank last.
type Kind string

const (
	KindModule   Kind = "Module"
	KindFunction Kind = "Function"
	KindStruct   Kind = "Struct"
	KindTrait    Kind = "Trait"
	KindType     Kind = "Type"
	KindEnum     Kind = "Enum"
)

// Priority returns the display rank for a kind (lower sorts first).
func (k Kind) Priority() int {
	switch k {
	case KindModule:
		return 0
	case KindFunction:
		return 1
	case KindStruct:
		return 2
	case KindTrait:
		return 3
	case KindType:
		return 4
	case KindEnum:
		return 5
	default:
		return 100
	}
}

// Match is one parsed MATCH line from racer output. Row and Column are
// 1-based positions in the file named by Path, which may be the synthesized
// context path rather than a file that exists on disk.
type Match struct {
	Completion string `json:"completion"`
	Snippet    string `json:"snippet,omitempty"`
	Row        int    `json:"row"`
	Column     int    `json:"column"`
	Path       string `json:"path"`
	Kind       Kind   `json:"kind"`
	Context    string `json:"context"`
}

func atoiField(field string) (int, bool) {
	value, err := strconv.Atoi(field)
	if err != nil {
		return 0, false
	}
	return value, true
}
