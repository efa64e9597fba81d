package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"prnbook/domain/core"
	"prnbook/domain/measurement"
	"prnbook/internal"
	"prnbook/ports"
)

// fieldSeparator splits a line into label and value
const fieldSeparator = ","

// SheetWriter streams one measurement file into a sheet column
type SheetWriter struct {
	storage ports.SourceStorage
	logger  *internal.Logger
}

// FileStats describes what one file contributed to its sheet
type FileStats struct {
	Name    string    `json:"name"`
	Column  int       `json:"column"`
	Lines   int       `json:"lines"`   // Physical lines read
	Written int       `json:"written"` // Values written
	Skipped int       `json:"skipped"` // Non-empty lines without exactly two fields
	Values  []float64 `json:"-"`
}

// NewSheetWriter creates a sheet writer reading through storage
func NewSheetWriter(storage ports.SourceStorage, logger *internal.Logger) *SheetWriter {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &SheetWriter{storage: storage, logger: logger}
}

// WriteFile copies the "label,value" lines of path into column. Line n of the
// file always maps to row n+1, so blank and malformed lines leave a gap and
// files of one group stay aligned by line position. The row label in column 1
// is only written if that cell is still empty. A value that is not a number
// fails the whole write.
func (w *SheetWriter) WriteFile(ctx context.Context, sink ports.SheetSink, path string, column int, style ports.CellStyle) (FileStats, error) {
	stats := FileStats{Name: filepath.Base(path), Column: column}

	if err := ctx.Err(); err != nil {
		return stats, err
	}

	rc, err := w.storage.Open(ctx, path)
	if err != nil {
		return stats, err
	}
	defer rc.Close()

	reader := bufio.NewReader(rc)
	row := measurement.FirstDataRow
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, fmt.Errorf("failed to read %s: %w", stats.Name, readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		stats.Lines++

		if err := w.writeLine(sink, line, row, column, style, &stats); err != nil {
			return stats, err
		}

		row++
		if readErr != nil {
			break
		}
	}

	w.logger.Debug("[SheetWriter] %s -> column %d: %d lines, %d values, %d skipped",
		stats.Name, column, stats.Lines, stats.Written, stats.Skipped)
	return stats, nil
}

func (w *SheetWriter) writeLine(sink ports.SheetSink, line string, row, column int, style ports.CellStyle, stats *FileStats) error {
	text := strings.TrimSpace(strings.ToValidUTF8(line, ""))
	if text == "" {
		return nil
	}

	parts := strings.Split(text, fieldSeparator)
	if len(parts) != 2 {
		stats.Skipped++
		w.logger.Trace("[SheetWriter] %s line %d: %d fields, skipped", stats.Name, stats.Lines, len(parts))
		return nil
	}

	label := strings.TrimSpace(parts[0])
	raw := strings.TrimSpace(parts[1])

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return core.NewValueParseError(stats.Name, stats.Lines, raw, err)
	}

	if label != "" {
		current, err := sink.Label(row)
		if err != nil {
			return fmt.Errorf("failed to read label at row %d: %w", row, err)
		}
		if current == "" {
			if err := sink.SetLabel(row, label); err != nil {
				return fmt.Errorf("failed to write label at row %d: %w", row, err)
			}
		}
	}

	if err := sink.SetValue(row, column, value, style); err != nil {
		return fmt.Errorf("failed to write value at row %d column %d: %w", row, column, err)
	}
	stats.Written++
	stats.Values = append(stats.Values, value)
	return nil
}
