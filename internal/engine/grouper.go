package engine

import (
	"log/slog"
	"strings"

	"github.com/qwicdev/backorder-analyzer/internal/model"
)

// OrderGroup is an order partition before categorization: rows split
// into shippable and backorder subsets, relative input order preserved.
type OrderGroup struct {
	No         string
	Customer   string
	Kind       model.OrderKind
	Shippable  []model.Row
	Backorder  []model.Row
	Unadjusted []model.Row
}

// GroupByOrder partitions rows by sales order number, preserving both
// the first-seen order of order numbers and the relative order of rows
// within each partition.
//
// Within a partition, shippable means a known positive available
// quantity and backorder means absent, zero, or negative. Rows with a
// malformed available value fall into neither subset; they are routed
// to backorder with a warning. When an entire partition ends up empty
// under the normal split it is either flagged as a no-adjustment order
// (all items carry an exempt prefix) or forced wholesale into
// backorder with a warning.
func GroupByOrder(rows []model.Row, exemptPrefixes []string) []OrderGroup {
	byOrder := make(map[string][]model.Row)
	var orderNos []string
	for _, r := range rows {
		if _, seen := byOrder[r.OrderNo]; !seen {
			orderNos = append(orderNos, r.OrderNo)
		}
		byOrder[r.OrderNo] = append(byOrder[r.OrderNo], r)
	}

	groups := make([]OrderGroup, 0, len(orderNos))
	for _, no := range orderNos {
		groups = append(groups, splitOrder(no, byOrder[no], exemptPrefixes))
	}
	return groups
}

func splitOrder(no string, rows []model.Row, exemptPrefixes []string) OrderGroup {
	g := OrderGroup{
		No:       no,
		Customer: rows[0].Customer,
		Kind:     model.KindStandard,
	}

	var malformed []model.Row
	for _, r := range rows {
		switch {
		case r.IsShippable():
			g.Shippable = append(g.Shippable, r)
		case r.IsBackorder():
			g.Backorder = append(g.Backorder, r)
		default:
			malformed = append(malformed, r)
		}
	}

	if len(g.Shippable) == 0 && len(g.Backorder) == 0 {
		if allExempt(rows, exemptPrefixes) {
			g.Kind = model.KindNoAdjustment
			g.Unadjusted = rows
			slog.Info("order flagged as no-adjustment", "order", no, "lines", len(rows))
			return g
		}

		slog.Warn("order yielded no shippable or backorder rows, forcing all to backorder",
			"order", no, "lines", len(rows))
		g.Backorder = rows
		return g
	}

	for _, r := range malformed {
		slog.Warn("malformed available quantity, treating row as backorder",
			"order", no, "item", r.ItemNo, "value", r.AvailableRaw)
		g.Backorder = append(g.Backorder, r)
	}

	slog.Info("order grouped", "order", no, "customer", g.Customer,
		"shippable", len(g.Shippable), "backorder", len(g.Backorder))
	return g
}

// allExempt reports whether every row's item number starts with one of
// the configured exempt prefixes.
func allExempt(rows []model.Row, prefixes []string) bool {
	if len(prefixes) == 0 {
		return false
	}
	for _, r := range rows {
		if !hasExemptPrefix(r.ItemNo, prefixes) {
			return false
		}
	}
	return true
}

func hasExemptPrefix(itemNo string, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(itemNo, p) {
			return true
		}
	}
	return false
}
