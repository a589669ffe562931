// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/qwicdev/backorder-analyzer/internal/catalog"
	"github.com/qwicdev/backorder-analyzer/internal/model"
)

// NewTestStore opens a category store in a fresh temp directory. The
// store starts from the built-in defaults; defaultCategory is what
// CategoryFor falls back to.
func NewTestStore(t *testing.T, defaultCategory int) *catalog.Store {
	t.Helper()

	store, err := catalog.Open(t.TempDir(), defaultCategory)
	if err != nil {
		t.Fatalf("failed to open test store: %v", err)
	}
	return store
}

// Row builds a model.Row the way the excel reader would. available may
// be empty (absent), a number, or garbage (malformed).
func Row(orderNo, itemNo, available string) model.Row {
	r := model.Row{
		OrderNo:      orderNo,
		ItemNo:       itemNo,
		Description:  "Testartikel " + itemNo,
		Customer:     "Dealer " + orderNo,
		Quantity:     decimal.NewFromInt(1),
		AvailableRaw: available,
	}
	if available != "" {
		if d, err := decimal.NewFromString(available); err == nil {
			r.Available = decimal.NewNullDecimal(d)
		}
	}
	return r
}
