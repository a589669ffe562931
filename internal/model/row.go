// Package model defines the core domain models used throughout the application.
package model

import "github.com/shopspring/decimal"

// Row is a single order line from an ERP backorder export. Rows are
// constructed once by the reader and never mutated afterwards.
type Row struct {
	OrderNo      string
	ItemNo       string
	Description  string
	Location     string
	Reserved     string
	Status       string
	Customer     string
	AvailableRaw string // original cell text, kept for malformed-value diagnostics
	Quantity     decimal.Decimal
	Available    decimal.NullDecimal // invalid when the export carried no usable value
}

// IsShippable reports whether the line can ship now: a known,
// strictly positive available quantity.
func (r Row) IsShippable() bool {
	return r.Available.Valid && r.Available.Decimal.IsPositive()
}

// IsBackorder reports whether the line is on backorder: the available
// quantity is absent, zero, or negative.
func (r Row) IsBackorder() bool {
	if !r.Available.Valid {
		return r.AvailableRaw == ""
	}
	return !r.Available.Decimal.IsPositive()
}

// HasMalformedAvailability reports whether the export carried a value
// for available quantity that could not be parsed as a number.
func (r Row) HasMalformedAvailability() bool {
	return !r.Available.Valid && r.AvailableRaw != ""
}
