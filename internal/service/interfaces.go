// Package service defines the interfaces for all application services.
package service

import (
	"context"

	"github.com/qwicdev/backorder-analyzer/internal/model"
)

// CategoryStore is the read/write contract for category definitions
// and per-item link overrides.
type CategoryStore interface {
	// Categories returns all categories ordered by ascending ID.
	Categories() []model.Category

	// CategoryFor resolves the category for an item. Iteration is in
	// ascending-ID order so duplicate memberships resolve to the lowest
	// category ID. Returns the configured default when nothing matches.
	CategoryFor(itemNo string) int

	// Attribute accessors. They return sentinel values for unknown
	// category IDs, never an error.
	NameOf(categoryID int) string
	DescriptionOf(categoryID int) string
	ActionOf(categoryID int) string
	ColorOf(categoryID int) string

	// Membership mutation. Both report whether a change occurred and
	// persist synchronously when it did.
	AddItem(itemNo string, categoryID int) (bool, error)
	RemoveItem(itemNo string, categoryID int) (bool, error)

	// Item link overrides.
	LinkFor(itemNo, linkType string) string
	SetLink(itemNo, linkType, url string) error
}

// InputReader loads the raw order lines from an export file.
type InputReader interface {
	ReadRows(path string) ([]model.Row, error)
}

// ReportWriter serializes analysis results. Implementations decide the
// output format; the pipeline only hands over grouped orders and
// rendered drafts.
type ReportWriter interface {
	WriteAnalysis(ctx context.Context, orders []model.Order, path string) error
	WriteEmailReport(ctx context.Context, drafts []model.EmailDraft, path string) error
}

// Storage is the persistence contract for the run-history store.
type Storage interface {
	SaveRun(ctx context.Context, run *model.RunSummary) error
	ListRuns(ctx context.Context, limit int) ([]model.RunSummary, error)
	Close() error
}
