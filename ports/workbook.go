package ports

// CellStyle is the display format applied to numeric cells.
type CellStyle struct {
	NumberFormat string // Excel number format code, e.g. "0.000"
}

// SheetSink is the single output sheet a group's files are written into.
// Rows and columns are 1-based.
type SheetSink interface {
	SetHeader(column int, label string) error
	Label(row int) (string, error)
	SetLabel(row int, label string) error
	SetValue(row, column int, value float64, style CellStyle) error
}

// Workbook is a sheet that can be persisted.
type Workbook interface {
	SheetSink
	SaveAs(path string) error
	Close() error
}

// WorkbookFactory creates a fresh single-sheet workbook for one group.
type WorkbookFactory interface {
	NewWorkbook() (Workbook, error)
}
