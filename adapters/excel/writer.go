package excel

import (
	"fmt"

	"prnbook/ports"

	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet excelize.NewFile starts with
const defaultSheet = "Sheet1"

// Workbook is a single-sheet excelize workbook implementing ports.Workbook
type Workbook struct {
	file   *excelize.File
	sheet  string
	styles map[string]int // number format -> excelize style ID
}

// Factory creates Workbooks with a fixed configuration
type Factory struct {
	config WorkbookConfig
}

// NewFactory creates a workbook factory
func NewFactory(config WorkbookConfig) *Factory {
	if config.SheetName == "" {
		config.SheetName = DefaultWorkbookConfig().SheetName
	}
	return &Factory{config: config}
}

// NewWorkbook implements ports.WorkbookFactory
func (f *Factory) NewWorkbook() (ports.Workbook, error) {
	wb, err := NewWorkbook(f.config)
	if err != nil {
		return nil, err
	}
	return wb, nil
}

// NewWorkbook creates an empty workbook whose only sheet is config.SheetName
func NewWorkbook(config WorkbookConfig) (*Workbook, error) {
	f := excelize.NewFile()

	sheet := config.SheetName
	if sheet == "" {
		sheet = defaultSheet
	}
	if sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to rename sheet to %q: %w", sheet, err)
		}
	}

	return &Workbook{
		file:   f,
		sheet:  sheet,
		styles: make(map[string]int),
	}, nil
}

// SetHeader writes a column label into row 1
func (w *Workbook) SetHeader(column int, label string) error {
	cell, err := excelize.CoordinatesToCellName(column, 1)
	if err != nil {
		return err
	}
	return w.file.SetCellStr(w.sheet, cell, label)
}

// Label returns the row label in column A, "" when unset
func (w *Workbook) Label(row int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return "", err
	}
	return w.file.GetCellValue(w.sheet, cell)
}

// SetLabel writes the row label into column A
func (w *Workbook) SetLabel(row int, label string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return w.file.SetCellStr(w.sheet, cell, label)
}

// SetValue writes a number and applies the requested display format
func (w *Workbook) SetValue(row, column int, value float64, style ports.CellStyle) error {
	cell, err := excelize.CoordinatesToCellName(column, row)
	if err != nil {
		return err
	}
	if err := w.file.SetCellFloat(w.sheet, cell, value, -1, 64); err != nil {
		return err
	}
	if style.NumberFormat == "" {
		return nil
	}
	styleID, err := w.styleFor(style.NumberFormat)
	if err != nil {
		return err
	}
	return w.file.SetCellStyle(w.sheet, cell, cell, styleID)
}

// styleFor registers a number format once per workbook
func (w *Workbook) styleFor(numFmt string) (int, error) {
	if id, ok := w.styles[numFmt]; ok {
		return id, nil
	}
	format := numFmt
	id, err := w.file.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return 0, fmt.Errorf("failed to create style %q: %w", numFmt, err)
	}
	w.styles[numFmt] = id
	return id, nil
}

// SaveAs writes the workbook to path, replacing any existing file
func (w *Workbook) SaveAs(path string) error {
	return w.file.SaveAs(path)
}

// Close releases the underlying excelize file
func (w *Workbook) Close() error {
	return w.file.Close()
}

// SheetName returns the name of the workbook's only sheet
func (w *Workbook) SheetName() string {
	return w.sheet
}
