package engine

import (
	"github.com/qwicdev/backorder-analyzer/internal/model"
	"github.com/qwicdev/backorder-analyzer/internal/service"
)

// Classifier annotates backorder rows with their category. It is a
// pure function of the store's current state: every call re-resolves
// membership so edits between runs take effect without a restart.
type Classifier struct {
	store service.CategoryStore
}

// NewClassifier returns a Classifier backed by the given store.
func NewClassifier(store service.CategoryStore) *Classifier {
	return &Classifier{store: store}
}

// Classify resolves the category, display name, and action text for
// each row. Rows without a membership get the store's default
// category, or model.CategoryNone when none is configured.
func (c *Classifier) Classify(rows []model.Row) []model.Classification {
	out := make([]model.Classification, 0, len(rows))
	for _, r := range rows {
		id := c.store.CategoryFor(r.ItemNo)
		out = append(out, model.Classification{
			Row:          r,
			CategoryID:   id,
			CategoryName: c.store.NameOf(id),
			Action:       c.store.ActionOf(id),
		})
	}
	return out
}
