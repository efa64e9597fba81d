package measurement

// ColumnAssignment hands out sheet columns to channel labels in the order the
// labels are first seen. Column 1 is never assigned.
type ColumnAssignment struct {
	index  map[string]int
	labels []string
}

// NewColumnAssignment returns an empty assignment.
func NewColumnAssignment() *ColumnAssignment {
	return &ColumnAssignment{index: make(map[string]int)}
}

// Assign returns the column for label, allocating the next free one when the
// label is new. created is true on first allocation.
func (a *ColumnAssignment) Assign(label string) (column int, created bool) {
	if col, ok := a.index[label]; ok {
		return col, false
	}
	col := LabelColumn + 1 + len(a.labels)
	a.index[label] = col
	a.labels = append(a.labels, label)
	return col, true
}

// PhaseColumn is the column right after the last channel column.
func (a *ColumnAssignment) PhaseColumn() int {
	return LabelColumn + 1 + len(a.labels)
}

// Labels returns channel labels in column order.
func (a *ColumnAssignment) Labels() []string {
	out := make([]string, len(a.labels))
	copy(out, a.labels)
	return out
}

// Len is the number of channel columns.
func (a *ColumnAssignment) Len() int {
	return len(a.labels)
}
