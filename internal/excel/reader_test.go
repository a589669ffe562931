package excel

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/qwicdev/backorder-analyzer/internal/common"
)

// writeExport builds a one-sheet xlsx fixture with the given header
// and records.
func writeExport(t *testing.T, header []string, records [][]string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue("Sheet1", cell, h))
	}
	for r, record := range records {
		for c, v := range record {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

var canonicalHeader = []string{
	"Sales Order No.", "Item No.", "Description", "Quantity",
	"Quantity Available", "Location Code", "Fully Reserved",
	"Order Status", "Customer Name",
}

func TestReadRows_CanonicalColumns(t *testing.T) {
	path := writeExport(t, canonicalHeader, [][]string{
		{"SO-1", "10701", "Kettingblad", "2", "5", "DSV", "No", "Backorder", "Fietsen Jansen"},
		{"SO-1", "10702", "Remblok", "1", "0", "DSV", "No", "Backorder", "Fietsen Jansen"},
	})

	rows, err := NewReader().ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	r := rows[0]
	assert.Equal(t, "SO-1", r.OrderNo)
	assert.Equal(t, "10701", r.ItemNo)
	assert.Equal(t, "Kettingblad", r.Description)
	assert.Equal(t, "2", r.Quantity.String())
	require.True(t, r.Available.Valid)
	assert.Equal(t, "5", r.Available.Decimal.String())
	assert.Equal(t, "Fietsen Jansen", r.Customer)

	assert.True(t, rows[1].IsBackorder())
	assert.False(t, rows[1].IsShippable())
}

func TestReadRows_RawColumnsAreMapped(t *testing.T) {
	header := []string{
		"Document No.", "No.", "Description", "Outstanding Quantity",
		"Qty. Available", "Location Code", "Fully Reserved",
		"Status", "Sell-to Customer Name",
	}
	path := writeExport(t, header, [][]string{
		{"SO-7", "10716", "Motor", "1", "0", "DSV", "No", "Backorder", "Rijwielhandel Smit"},
	})

	rows, err := NewReader().ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "SO-7", rows[0].OrderNo)
	assert.Equal(t, "10716", rows[0].ItemNo)
	assert.Equal(t, "Backorder", rows[0].Status)
	assert.Equal(t, "Rijwielhandel Smit", rows[0].Customer)
}

func TestReadRows_SynthesizesMissingColumns(t *testing.T) {
	path := writeExport(t, []string{"Sales Order No.", "Item No."}, [][]string{
		{"SO-1", "10701"},
	})

	rows, err := NewReader().ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "No", r.Reserved)
	assert.Equal(t, "Backorder", r.Status)
	assert.Equal(t, "Unknown", r.Customer)
	assert.Equal(t, "0", r.Quantity.String())
	assert.False(t, r.Available.Valid)
	assert.True(t, r.IsBackorder())
}

func TestReadRows_MissingKeyColumnsAbort(t *testing.T) {
	path := writeExport(t, []string{"Description", "Quantity"}, [][]string{
		{"Zadel", "1"},
	})

	_, err := NewReader().ReadRows(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrMissingColumns))
	assert.Contains(t, err.Error(), "Sales Order No.")
	assert.Contains(t, err.Error(), "Item No.")
}

func TestReadRows_MalformedAvailableIsKeptRaw(t *testing.T) {
	path := writeExport(t, canonicalHeader, [][]string{
		{"SO-1", "10701", "Ketting", "1", "#N/A", "DSV", "No", "Backorder", "Jansen"},
	})

	rows, err := NewReader().ReadRows(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.False(t, r.Available.Valid)
	assert.Equal(t, "#N/A", r.AvailableRaw)
	assert.True(t, r.HasMalformedAvailability())
	assert.False(t, r.IsBackorder())
	assert.False(t, r.IsShippable())
}

func TestReadRows_SkipsEmptyRecords(t *testing.T) {
	path := writeExport(t, canonicalHeader, [][]string{
		{"SO-1", "10701", "Ketting", "1", "2", "DSV", "No", "Backorder", "Jansen"},
		{"", "", "", "", "", "", "", "", ""},
		{"SO-2", "10702", "Zadel", "1", "0", "DSV", "No", "Backorder", "Smit"},
	})

	rows, err := NewReader().ReadRows(path)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReadRows_MissingFile(t *testing.T) {
	_, err := NewReader().ReadRows(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}
