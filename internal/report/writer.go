package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/qwicdev/backorder-analyzer/internal/model"
	"github.com/qwicdev/backorder-analyzer/internal/service"
)

const (
	analysisSheet = "Backorder Analyse"
	maxColWidth   = 50.0
)

// ExcelWriter implements service.ReportWriter on xlsx workbooks. The
// category store supplies the row background color per category.
type ExcelWriter struct {
	store service.CategoryStore
}

// NewExcelWriter returns a writer that colors backorder rows by
// category.
func NewExcelWriter(store service.CategoryStore) *ExcelWriter {
	return &ExcelWriter{store: store}
}

// WriteAnalysis renders one block per order: an order header with
// counts, the shippable section, and the backorder section with
// category name, action text, and category-colored fills.
func (w *ExcelWriter) WriteAnalysis(ctx context.Context, orders []model.Order, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", analysisSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	styles := newStyleSet(f)
	sheet := &sheetWriter{file: f, sheet: analysisSheet, styles: styles, row: 1, columns: 6}

	for _, order := range orders {
		if err := w.writeOrderBlock(sheet, order); err != nil {
			return err
		}
		sheet.row += 2
	}

	if err := sheet.autoWidth(); err != nil {
		return err
	}
	if err := saveWorkbook(f, path); err != nil {
		return err
	}

	slog.Info("analysis workbook written", "path", path, "orders", len(orders))
	return nil
}

func (w *ExcelWriter) writeOrderBlock(s *sheetWriter, order model.Order) error {
	header := []any{
		fmt.Sprintf("Order: %s", order.No),
		fmt.Sprintf("Klant: %s", order.Customer),
		fmt.Sprintf("Totaal: %d", order.TotalLines()),
		fmt.Sprintf("Verzendbaar: %d", len(order.Shippable)),
		fmt.Sprintf("Backorder: %d", len(order.Backorder)),
	}
	if err := s.writeStyledRow(header, s.styles.boldFill, colorOrderHeader); err != nil {
		return err
	}

	if order.Kind == model.KindNoAdjustment {
		return w.writeUnadjustedSection(s, order)
	}

	if len(order.Shippable) > 0 {
		if err := s.writeMarker("VERZENDBAAR", colorShippable); err != nil {
			return err
		}
		if err := s.writeStyledRow([]any{"Artikelnummer", "Omschrijving", "Aantal", "Beschikbaar"}, s.styles.boldFill, colorHeader); err != nil {
			return err
		}
		for _, r := range order.Shippable {
			cells := []any{r.ItemNo, r.Description, r.Quantity.String(), r.AvailableRaw}
			if err := s.writeStyledRow(cells, s.styles.fill, colorShippable); err != nil {
				return err
			}
		}
	}

	if len(order.Backorder) > 0 {
		if err := s.writeMarker("BACKORDER", colorBackorder); err != nil {
			return err
		}
		if err := s.writeStyledRow([]any{"Artikelnummer", "Omschrijving", "Aantal", "Beschikbaar", "Categorie", "Actie"}, s.styles.boldFill, colorHeader); err != nil {
			return err
		}
		for _, c := range order.Backorder {
			cells := []any{c.Row.ItemNo, c.Row.Description, c.Row.Quantity.String(), c.Row.AvailableRaw, c.CategoryName, c.Action}
			if err := s.writeStyledRow(cells, s.styles.fill, w.store.ColorOf(c.CategoryID)); err != nil {
				return err
			}
		}
	}

	return nil
}

// writeUnadjustedSection lists the lines of a no-adjustment order.
// These orders bypass categorization but stay visible in the report.
func (w *ExcelWriter) writeUnadjustedSection(s *sheetWriter, order model.Order) error {
	if err := s.writeMarker("GEEN AANPASSING", colorOrderHeader); err != nil {
		return err
	}
	if err := s.writeStyledRow([]any{"Artikelnummer", "Omschrijving", "Aantal", "Beschikbaar"}, s.styles.boldFill, colorHeader); err != nil {
		return err
	}
	for _, r := range order.Unadjusted {
		cells := []any{r.ItemNo, r.Description, r.Quantity.String(), r.AvailableRaw}
		if err := s.writeStyledRow(cells, s.styles.fill, colorOrderHeader); err != nil {
			return err
		}
	}
	return nil
}

// sheetWriter tracks the current row while blocks are appended.
type sheetWriter struct {
	file    *excelize.File
	styles  *styleSet
	sheet   string
	row     int
	columns int
}

func (s *sheetWriter) writeStyledRow(cells []any, style func(string) (int, error), color string) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, s.row)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates: %w", err)
		}
		if err := s.file.SetCellValue(s.sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}

	styleID, err := style(color)
	if err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, s.row)
	last, _ := excelize.CoordinatesToCellName(len(cells), s.row)
	if err := s.file.SetCellStyle(s.sheet, first, last, styleID); err != nil {
		return fmt.Errorf("failed to style row %d: %w", s.row, err)
	}

	s.row++
	return nil
}

// writePlainRow appends a row without styling.
func (s *sheetWriter) writePlainRow(cells []any) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, s.row)
		if err != nil {
			return fmt.Errorf("invalid cell coordinates: %w", err)
		}
		if err := s.file.SetCellValue(s.sheet, cell, v); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	s.row++
	return nil
}

func (s *sheetWriter) writeMarker(label, color string) error {
	return s.writeStyledRow([]any{label}, s.styles.boldFill, color)
}

// autoWidth sizes each column to its longest value, capped.
func (s *sheetWriter) autoWidth() error {
	rows, err := s.file.GetRows(s.sheet)
	if err != nil {
		return fmt.Errorf("failed to measure columns: %w", err)
	}

	for col := 1; col <= s.columns; col++ {
		maxLen := 0
		for _, r := range rows {
			if col-1 >= len(r) {
				continue
			}
			if n := utf8.RuneCountInString(r[col-1]); n > maxLen {
				maxLen = n
			}
		}
		width := float64(maxLen + 2)
		if width > maxColWidth {
			width = maxColWidth
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return fmt.Errorf("invalid column number %d: %w", col, err)
		}
		if err := s.file.SetColWidth(s.sheet, name, name, width); err != nil {
			return fmt.Errorf("failed to set width of column %s: %w", name, err)
		}
	}
	return nil
}

func saveWorkbook(f *excelize.File, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
