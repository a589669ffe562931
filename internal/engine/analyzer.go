package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/qwicdev/backorder-analyzer/internal/common"
	"github.com/qwicdev/backorder-analyzer/internal/config"
	"github.com/qwicdev/backorder-analyzer/internal/email"
	"github.com/qwicdev/backorder-analyzer/internal/model"
	"github.com/qwicdev/backorder-analyzer/internal/service"
)

// Analyzer orchestrates one batch run: read, filter, group, classify,
// draft, write. The run is single-threaded and executes to completion
// or failure; the context is only consulted between stages.
type Analyzer struct {
	reader  service.InputReader
	store   service.CategoryStore
	writer  service.ReportWriter
	history service.Storage // may be nil; run recording is best-effort

	// Progress, when set, is called after each order is processed.
	Progress func(done, total int)
}

// NewAnalyzer wires an Analyzer from its collaborators.
func NewAnalyzer(reader service.InputReader, store service.CategoryStore, writer service.ReportWriter, history service.Storage) *Analyzer {
	return &Analyzer{
		reader:  reader,
		store:   store,
		writer:  writer,
		history: history,
	}
}

// Run executes the pipeline for one immutable run configuration and
// returns a summary of what was produced.
func (a *Analyzer) Run(ctx context.Context, cfg *config.RunConfig) (*model.RunSummary, error) {
	summary := &model.RunSummary{
		ID:             uuid.NewString(),
		StartedAt:      time.Now(),
		InputPath:      cfg.InputPath,
		OutputPath:     cfg.OutputPath,
		CategoryCounts: make(map[int]int),
		Status:         model.RunCompleted,
	}

	orders, drafts, err := a.analyze(ctx, cfg, summary)
	summary.FinishedAt = time.Now()
	if err != nil {
		summary.Status = model.RunFailed
		summary.Error = err.Error()
		common.LogError(err, "analysis failed", common.Fields{"run": summary.ID, "input": cfg.InputPath})
		a.recordRun(ctx, summary)
		return summary, err
	}

	slog.Info("analysis complete",
		"orders", len(orders),
		"shippable", summary.ShippableLines,
		"backorder", summary.BackorderLines,
		"drafts", len(drafts),
		"output", cfg.OutputPath)

	a.recordRun(ctx, summary)
	return summary, nil
}

func (a *Analyzer) analyze(ctx context.Context, cfg *config.RunConfig, summary *model.RunSummary) ([]model.Order, []model.EmailDraft, error) {
	slog.Info("starting analysis", "input", cfg.InputPath)

	rows, err := a.reader.ReadRows(cfg.InputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read input: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	filtered := FilterRows(rows, FilterCriteria{
		Location: cfg.Location,
		Reserved: cfg.Reserved,
		Status:   cfg.Status,
	})
	groups := GroupByOrder(filtered, cfg.ExemptPrefixes)
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	builder, err := email.NewBuilder(a.store, cfg.Templates)
	if err != nil {
		return nil, nil, err
	}
	classifier := NewClassifier(a.store)

	orders := make([]model.Order, 0, len(groups))
	var drafts []model.EmailDraft
	for i, g := range groups {
		order := model.Order{
			No:         g.No,
			Customer:   g.Customer,
			Kind:       g.Kind,
			Shippable:  g.Shippable,
			Unadjusted: g.Unadjusted,
		}

		if g.Kind == model.KindStandard {
			order.Backorder = classifier.Classify(g.Backorder)
			for _, c := range order.Backorder {
				summary.CategoryCounts[c.CategoryID]++
				draft, buildErr := builder.Build(c)
				if buildErr != nil {
					return nil, nil, buildErr
				}
				if draft != nil {
					drafts = append(drafts, *draft)
				}
			}
		} else {
			summary.NoAdjustmentOrders++
		}

		summary.ShippableLines += len(order.Shippable)
		summary.BackorderLines += len(order.Backorder)
		orders = append(orders, order)

		if a.Progress != nil {
			a.Progress(i+1, len(groups))
		}
	}
	summary.Orders = len(orders)
	summary.Drafts = len(drafts)

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if err := a.writer.WriteAnalysis(ctx, orders, cfg.OutputPath); err != nil {
		return nil, nil, fmt.Errorf("failed to write analysis workbook: %w", err)
	}

	if len(drafts) > 0 {
		summary.EmailReportPath = cfg.EmailReportPath
		if err := a.writer.WriteEmailReport(ctx, drafts, cfg.EmailReportPath); err != nil {
			return nil, nil, fmt.Errorf("failed to write email report: %w", err)
		}
	} else {
		slog.Info("no drafts generated, skipping email report")
	}

	return orders, drafts, nil
}

// recordRun persists the run summary. Failure to record is logged and
// otherwise ignored; history is bookkeeping, not output.
func (a *Analyzer) recordRun(ctx context.Context, summary *model.RunSummary) {
	if a.history == nil {
		return
	}
	if err := a.history.SaveRun(ctx, summary); err != nil {
		common.LogWarn("failed to record run history", common.Fields{"run": summary.ID, "error": err})
	}
}
