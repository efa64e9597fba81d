package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"prnbook/internal"
	"prnbook/internal/source"
	"prnbook/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cellKey struct{ row, col int }

// memorySheet is an in-memory ports.Workbook
type memorySheet struct {
	headers map[int]string
	labels  map[int]string
	values  map[cellKey]float64
	styles  map[cellKey]ports.CellStyle
	saved   []string
	closed  bool
	saveErr error
}

func newMemorySheet() *memorySheet {
	return &memorySheet{
		headers: make(map[int]string),
		labels:  make(map[int]string),
		values:  make(map[cellKey]float64),
		styles:  make(map[cellKey]ports.CellStyle),
	}
}

func (m *memorySheet) SetHeader(column int, label string) error {
	m.headers[column] = label
	return nil
}

func (m *memorySheet) Label(row int) (string, error) {
	return m.labels[row], nil
}

func (m *memorySheet) SetLabel(row int, label string) error {
	m.labels[row] = label
	return nil
}

func (m *memorySheet) SetValue(row, column int, value float64, style ports.CellStyle) error {
	m.values[cellKey{row, column}] = value
	m.styles[cellKey{row, column}] = style
	return nil
}

func (m *memorySheet) SaveAs(path string) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, path)
	return nil
}

func (m *memorySheet) Close() error {
	m.closed = true
	return nil
}

func (m *memorySheet) value(row, col int) (float64, bool) {
	v, ok := m.values[cellKey{row, col}]
	return v, ok
}

// memoryFactory hands out memorySheets and remembers them
type memoryFactory struct {
	sheets []*memorySheet
}

func (f *memoryFactory) NewWorkbook() (ports.Workbook, error) {
	s := newMemorySheet()
	f.sheets = append(f.sheets, s)
	return s, nil
}

// mockSink records calls through testify/mock
type mockSink struct {
	mock.Mock
}

func (m *mockSink) SetHeader(column int, label string) error {
	return m.Called(column, label).Error(0)
}

func (m *mockSink) Label(row int) (string, error) {
	args := m.Called(row)
	return args.String(0), args.Error(1)
}

func (m *mockSink) SetLabel(row int, label string) error {
	return m.Called(row, label).Error(0)
}

func (m *mockSink) SetValue(row, column int, value float64, style ports.CellStyle) error {
	return m.Called(row, column, value, style).Error(0)
}

// mapStorage serves file contents from memory
type mapStorage struct {
	files map[string]string
}

func (s *mapStorage) IsDir(ctx context.Context, folder string) (bool, error) {
	return true, nil
}

func (s *mapStorage) List(ctx context.Context, folder, ext string) ([]string, error) {
	var out []string
	for name := range s.files {
		if strings.HasSuffix(name, ext) {
			out = append(out, name)
		}
	}
	return out, nil
}

func (s *mapStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	content, ok := s.files[filepath.Base(path)]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return io.NopCloser(strings.NewReader(content)), nil
}

var testStyle = ports.CellStyle{NumberFormat: "0.000"}

func writeInputs(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func localStorage(t *testing.T) *source.LocalFileStorage {
	t.Helper()
	s, err := source.NewLocalFileStorage(source.DefaultStorageConfig())
	require.NoError(t, err)
	return s
}

func quietLogger() *internal.Logger {
	return internal.NewNopLogger()
}
