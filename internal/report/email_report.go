package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/qwicdev/backorder-analyzer/internal/model"
)

const emailSheet = "E-mails"

var emailHeaders = []any{
	"Ordernummer", "Klant", "Artikelnummer", "Omschrijving",
	"Aantal", "Categorie", "Onderwerp", "E-mail Body",
}

// WriteEmailReport renders the generated drafts, one row each. Callers
// skip this entirely when no drafts exist.
func (w *ExcelWriter) WriteEmailReport(ctx context.Context, drafts []model.EmailDraft, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", emailSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	styles := newStyleSet(f)
	sheet := &sheetWriter{file: f, sheet: emailSheet, styles: styles, row: 1, columns: len(emailHeaders)}

	if err := sheet.writeStyledRow(emailHeaders, styles.boldFill, colorHeader); err != nil {
		return err
	}

	for _, d := range drafts {
		cells := []any{
			d.Row.OrderNo,
			d.To,
			d.Row.ItemNo,
			d.Row.Description,
			d.Row.Quantity.String(),
			w.store.NameOf(d.CategoryID),
			d.Subject,
			d.Body,
		}
		if err := sheet.writePlainRow(cells); err != nil {
			return err
		}
	}

	if err := sheet.autoWidth(); err != nil {
		return err
	}
	if err := saveWorkbook(f, path); err != nil {
		return err
	}

	slog.Info("email report written", "path", path, "drafts", len(drafts))
	return nil
}
