// Package engine implements the core analysis pipeline: row filtering,
// order grouping, categorization, and run orchestration.
package engine

import (
	"log/slog"

	"github.com/qwicdev/backorder-analyzer/internal/model"
)

// FilterCriteria holds the optional equality filters applied to the
// input rows. A blank criterion means no constraint, not "match blank".
type FilterCriteria struct {
	Location string
	Reserved string
	Status   string
}

// FilterRows returns the rows matching every non-blank criterion by
// exact string equality. The filters are commutative set
// intersections; an empty result is valid.
func FilterRows(rows []model.Row, c FilterCriteria) []model.Row {
	out := rows

	if c.Location != "" {
		out = keep(out, func(r model.Row) bool { return r.Location == c.Location })
		slog.Info("applied location filter", "location", c.Location, "rows", len(out))
	}
	if c.Reserved != "" {
		out = keep(out, func(r model.Row) bool { return r.Reserved == c.Reserved })
		slog.Info("applied reservation filter", "reserved", c.Reserved, "rows", len(out))
	}
	if c.Status != "" {
		out = keep(out, func(r model.Row) bool { return r.Status == c.Status })
		slog.Info("applied status filter", "status", c.Status, "rows", len(out))
	}

	slog.Info("filtering complete", "before", len(rows), "after", len(out))
	return out
}

func keep(rows []model.Row, match func(model.Row) bool) []model.Row {
	out := make([]model.Row, 0, len(rows))
	for _, r := range rows {
		if match(r) {
			out = append(out, r)
		}
	}
	return out
}
