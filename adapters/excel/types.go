package excel

// SheetData is the content of one worksheet read back from disk
type SheetData struct {
	Name    string     // Sheet name
	Headers []string   // Row 1
	Rows    [][]string // Rows 2..n, cells as displayed
}

// Cell returns the displayed value at a 1-based row and column, or "" when the
// cell lies outside the read range.
func (d *SheetData) Cell(row, column int) string {
	if row == 1 {
		if column-1 < len(d.Headers) {
			return d.Headers[column-1]
		}
		return ""
	}
	i := row - 2
	if i < 0 || i >= len(d.Rows) || column-1 >= len(d.Rows[i]) {
		return ""
	}
	return d.Rows[i][column-1]
}
