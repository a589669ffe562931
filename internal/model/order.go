package model

// OrderKind distinguishes how an order flows through the pipeline.
type OrderKind string

// Order kind constants.
const (
	// KindStandard orders get the normal shippable/backorder split.
	KindStandard OrderKind = "STANDARD"
	// KindNoAdjustment orders consist solely of exempt-prefix items and
	// bypass categorization and email generation.
	KindNoAdjustment OrderKind = "NO_ADJUSTMENT"
)

// Order groups the rows sharing a sales order number. Built once per
// analysis run and discarded after report generation.
type Order struct {
	No         string
	Customer   string
	Kind       OrderKind
	Shippable  []Row
	Backorder  []Classification
	Unadjusted []Row // populated only for KindNoAdjustment orders
}

// TotalLines returns the number of lines in the order.
func (o Order) TotalLines() int {
	return len(o.Shippable) + len(o.Backorder) + len(o.Unadjusted)
}
