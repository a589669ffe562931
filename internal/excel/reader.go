// Package excel reads ERP backorder exports. It accepts either the
// canonical column set or the raw Navision column names, which get
// mapped onto the canonical set before processing.
package excel

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/qwicdev/backorder-analyzer/internal/common"
	"github.com/qwicdev/backorder-analyzer/internal/model"
)

// Canonical column headers.
const (
	colOrderNo     = "Sales Order No."
	colItemNo      = "Item No."
	colDescription = "Description"
	colQuantity    = "Quantity"
	colAvailable   = "Quantity Available"
	colLocation    = "Location Code"
	colReserved    = "Fully Reserved"
	colStatus      = "Order Status"
	colCustomer    = "Customer Name"
)

// rawHeaders maps the raw Navision export headers onto the canonical
// set.
var rawHeaders = map[string]string{
	"Document No.":          colOrderNo,
	"No.":                   colItemNo,
	"Outstanding Quantity":  colQuantity,
	"Qty. Available":        colAvailable,
	"Status":                colStatus,
	"Sell-to Customer Name": colCustomer,
}

// keyColumns cannot be synthesized; their absence aborts the run.
var keyColumns = []string{colOrderNo, colItemNo}

// synthesized holds the default values used for missing non-key
// columns.
var synthesized = map[string]string{
	colDescription: "",
	colQuantity:    "0",
	colAvailable:   "",
	colLocation:    "",
	colReserved:    "No",
	colStatus:      "Backorder",
	colCustomer:    "Unknown",
}

// Reader loads rows from .xlsx exports.
type Reader struct{}

// NewReader returns an input reader for spreadsheet exports.
func NewReader() *Reader {
	return &Reader{}
}

// ReadRows reads the first sheet of the export at path. Missing
// non-key columns are synthesized with defaults; missing key columns
// return common.ErrMissingColumns naming them.
func (r *Reader) ReadRows(path string) ([]model.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open export: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("no sheets found in %s", path)
	}

	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(cells) < 2 {
		return nil, fmt.Errorf("%w: %s", common.ErrEmptyInput, path)
	}

	index, err := mapColumns(cells[0])
	if err != nil {
		return nil, err
	}

	rows := make([]model.Row, 0, len(cells)-1)
	for _, record := range cells[1:] {
		if isEmptyRecord(record) {
			continue
		}
		rows = append(rows, buildRow(record, index))
	}

	slog.Info("export loaded", "path", path, "rows", len(rows))
	return rows, nil
}

// mapColumns resolves each canonical column to its index in the header
// row, applying the raw-header mapping and -1 for columns to
// synthesize.
func mapColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(synthesized)+len(keyColumns))
	for col := range synthesized {
		index[col] = -1
	}
	for _, col := range keyColumns {
		index[col] = -1
	}

	for i, h := range header {
		name := strings.TrimSpace(h)
		if canonical, ok := rawHeaders[name]; ok {
			name = canonical
		}
		if _, known := index[name]; known && index[name] == -1 {
			index[name] = i
		}
	}

	var missing []string
	for _, col := range keyColumns {
		if index[col] == -1 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", common.ErrMissingColumns, strings.Join(missing, ", "))
	}

	for col, idx := range index {
		if idx == -1 {
			slog.Warn("column missing from export, synthesizing default", "column", col, "default", synthesized[col])
		}
	}
	return index, nil
}

func buildRow(record []string, index map[string]int) model.Row {
	cell := func(col string) string {
		idx := index[col]
		if idx < 0 || idx >= len(record) {
			return synthesized[col]
		}
		return strings.TrimSpace(record[idx])
	}

	row := model.Row{
		OrderNo:      cell(colOrderNo),
		ItemNo:       cell(colItemNo),
		Description:  cell(colDescription),
		Location:     cell(colLocation),
		Reserved:     cell(colReserved),
		Status:       cell(colStatus),
		Customer:     cell(colCustomer),
		AvailableRaw: cell(colAvailable),
	}

	if qty, err := decimal.NewFromString(cell(colQuantity)); err == nil {
		row.Quantity = qty
	} else {
		slog.Warn("unparsable quantity, using zero", "order", row.OrderNo, "item", row.ItemNo, "value", cell(colQuantity))
	}

	if row.AvailableRaw != "" {
		if avail, err := decimal.NewFromString(row.AvailableRaw); err == nil {
			row.Available = decimal.NewNullDecimal(avail)
		}
	}

	return row
}

func isEmptyRecord(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
