package excel

import (
	"fmt"
	"os"
	"strings"
	"time"

	"prnbook/internal"

	"github.com/xuri/excelize/v2"
)

// SheetReader reads generated workbooks back for inspection
type SheetReader struct {
	filePath string
	raw      bool
}

// NewSheetReader creates a reader for an xlsx file. With raw set, numeric
// cells are returned unformatted.
func NewSheetReader(filePath string, raw bool) *SheetReader {
	return &SheetReader{filePath: filePath, raw: raw}
}

// ReadSheet reads one sheet; an empty name selects the first sheet
func (r *SheetReader) ReadSheet(name string) (*SheetData, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("XLSX file not found: %s", r.filePath)
	}

	startTime := time.Now()
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	if name == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %s has no sheets", r.filePath)
		}
		name = sheets[0]
	}

	rows, err := f.GetRows(name, excelize.Options{RawCellValue: r.raw})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	internal.DefaultLogger.Debug("[SheetReader] %s read in %.2fms (%d rows)",
		name, float64(time.Since(startTime).Nanoseconds())/1e6, len(rows))

	data := &SheetData{Name: name}
	if len(rows) == 0 {
		return data, nil
	}
	data.Headers = trimRow(rows[0])
	for _, row := range rows[1:] {
		data.Rows = append(data.Rows, trimRow(row))
	}
	return data, nil
}

// SheetNames lists the sheets of the workbook
func (r *SheetReader) SheetNames() ([]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

func trimRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = strings.TrimSpace(cell)
	}
	return out
}
