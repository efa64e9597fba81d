// Package measurement holds the filename rules that decide which workbook a
// measurement file feeds and which column it lands in.
package measurement

// InputExtension is the suffix of files picked up from a source folder.
const InputExtension = ".prn"

// PhaseMarker marks a file as phase data when present anywhere in its name.
const PhaseMarker = "XW"

// DefaultPhaseLabel is the header written above the phase column.
const DefaultPhaseLabel = "相位"

// LabelColumn is the shared row-label column.
const LabelColumn = 1

// HeaderRow holds the column labels; data starts on the row below.
const HeaderRow = 1

// FirstDataRow is the row written by the first line of every file.
const FirstDataRow = HeaderRow + 1

// Group is the set of files that produce one workbook.
type Group struct {
	Key   string   // Shared filename prefix, also the workbook name
	Files []string // Member filenames in discovery order
}

// Kind tells channel files from phase files.
type Kind int

const (
	KindChannel Kind = iota
	KindPhase
)

func (k Kind) String() string {
	switch k {
	case KindChannel:
		return "channel"
	case KindPhase:
		return "phase"
	default:
		return "unknown"
	}
}

// Classification is the column a file contributes to.
type Classification struct {
	Kind  Kind
	Label string // Channel code such as S21; empty for phase files
}

// IsPhase reports whether the file belongs in the shared phase column.
func (c Classification) IsPhase() bool {
	return c.Kind == KindPhase
}
