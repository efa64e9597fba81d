package excel

import (
	"math"
	"path/filepath"
	"testing"

	"prnbook/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var threeDecimals = ports.CellStyle{NumberFormat: "0.000"}

func TestWorkbook_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")

	wb, err := NewWorkbook(DefaultWorkbookConfig())
	require.NoError(t, err)
	assert.Equal(t, "Data", wb.SheetName())

	require.NoError(t, wb.SetHeader(3, "S21"))
	require.NoError(t, wb.SetLabel(2, "A"))
	require.NoError(t, wb.SetValue(2, 3, 1.5, threeDecimals))
	require.NoError(t, wb.SetLabel(3, "B"))
	require.NoError(t, wb.SetValue(3, 3, 2.25, threeDecimals))

	label, err := wb.Label(2)
	require.NoError(t, err)
	assert.Equal(t, "A", label)
	label, err = wb.Label(4)
	require.NoError(t, err)
	assert.Empty(t, label)

	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	names, err := NewSheetReader(path, false).SheetNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Data"}, names)

	shown, err := NewSheetReader(path, false).ReadSheet("")
	require.NoError(t, err)
	assert.Equal(t, "Data", shown.Name)
	assert.Equal(t, "S21", shown.Cell(1, 3))
	assert.Equal(t, "A", shown.Cell(2, 1))
	assert.Equal(t, "1.500", shown.Cell(2, 3))
	assert.Equal(t, "B", shown.Cell(3, 1))
	assert.Equal(t, "2.250", shown.Cell(3, 3))
	assert.Equal(t, "", shown.Cell(9, 9))

	raw, err := NewSheetReader(path, true).ReadSheet("Data")
	require.NoError(t, err)
	assert.Equal(t, "1.5", raw.Cell(2, 3))
	assert.Equal(t, "2.25", raw.Cell(3, 3))
}

func TestWorkbook_NumberFormatStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.xlsx")

	wb, err := NewWorkbook(WorkbookConfig{SheetName: "Data"})
	require.NoError(t, err)
	require.NoError(t, wb.SetValue(2, 2, 1, threeDecimals))
	require.NoError(t, wb.SetValue(3, 2, 2, threeDecimals))
	assert.Len(t, wb.styles, 1, "one style per number format")
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	styleID, err := f.GetCellStyle("Data", "B2")
	require.NoError(t, err)
	style, err := f.GetStyle(styleID)
	require.NoError(t, err)
	require.NotNil(t, style.CustomNumFmt)
	assert.Equal(t, "0.000", *style.CustomNumFmt)
}

// Excel has no cell value for infinities or NaN, so they land as text.
func TestWorkbook_NonFiniteValuesStoredAsText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonfinite.xlsx")

	wb, err := NewWorkbook(DefaultWorkbookConfig())
	require.NoError(t, err)
	require.NoError(t, wb.SetValue(2, 2, math.Inf(1), threeDecimals))
	require.NoError(t, wb.SetValue(3, 2, math.Inf(-1), threeDecimals))
	require.NoError(t, wb.SetValue(4, 2, math.NaN(), threeDecimals))
	require.NoError(t, wb.SetValue(5, 2, 1, threeDecimals))
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	for cell, want := range map[string]string{"B2": "+Inf", "B3": "-Inf", "B4": "NaN"} {
		typ, err := f.GetCellType("Data", cell)
		require.NoError(t, err)
		assert.Equal(t, excelize.CellTypeSharedString, typ, cell)

		got, err := f.GetCellValue("Data", cell)
		require.NoError(t, err)
		assert.Equal(t, want, got, cell)
	}

	typ, err := f.GetCellType("Data", "B5")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeUnset, typ, "finite values stay numeric")
}

func TestWorkbook_UnformattedValue(t *testing.T) {
	wb, err := NewWorkbook(WorkbookConfig{})
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, "Sheet1", wb.SheetName())
	require.NoError(t, wb.SetValue(2, 2, 7, ports.CellStyle{}))
	assert.Empty(t, wb.styles)
}

func TestFactory_FreshWorkbookEachTime(t *testing.T) {
	factory := NewFactory(WorkbookConfig{})

	first, err := factory.NewWorkbook()
	require.NoError(t, err)
	defer first.Close()
	require.NoError(t, first.SetLabel(2, "kept"))

	second, err := factory.NewWorkbook()
	require.NoError(t, err)
	defer second.Close()

	label, err := second.Label(2)
	require.NoError(t, err)
	assert.Empty(t, label)
	assert.Equal(t, "Data", second.(*Workbook).SheetName())
}

func TestSheetReader_MissingFile(t *testing.T) {
	_, err := NewSheetReader(filepath.Join(t.TempDir(), "nope.xlsx"), false).ReadSheet("")
	assert.Error(t, err)
}
