package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/qwicdev/backorder-analyzer/internal/model"
)

// SaveRun inserts one run summary.
func (s *SQLiteStorage) SaveRun(ctx context.Context, run *model.RunSummary) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if run == nil {
		return ErrNilRun
	}
	if err := validateString(run.ID, "run.ID"); err != nil {
		return err
	}

	counts, err := json.Marshal(run.CategoryCounts)
	if err != nil {
		return fmt.Errorf("failed to encode category counts: %w", err)
	}

	query := `
		INSERT INTO runs (
			id, started_at, finished_at, input_path, output_path,
			email_report_path, status, error, orders, shippable_lines,
			backorder_lines, no_adjustment_orders, drafts, category_counts
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = s.db.ExecContext(ctx, query,
		run.ID, run.StartedAt, run.FinishedAt, run.InputPath, run.OutputPath,
		run.EmailReportPath, string(run.Status), run.Error, run.Orders, run.ShippableLines,
		run.BackorderLines, run.NoAdjustmentOrders, run.Drafts, string(counts),
	)
	if err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}

	slog.Debug("run recorded", "run", run.ID, "status", run.Status)
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *SQLiteStorage) ListRuns(ctx context.Context, limit int) ([]model.RunSummary, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, started_at, finished_at, input_path, output_path,
			email_report_path, status, error, orders, shippable_lines,
			backorder_lines, no_adjustment_orders, drafts, category_counts
		FROM runs
		ORDER BY started_at DESC
		LIMIT ?`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []model.RunSummary
	for rows.Next() {
		var run model.RunSummary
		var status, counts string
		if err := rows.Scan(
			&run.ID, &run.StartedAt, &run.FinishedAt, &run.InputPath, &run.OutputPath,
			&run.EmailReportPath, &status, &run.Error, &run.Orders, &run.ShippableLines,
			&run.BackorderLines, &run.NoAdjustmentOrders, &run.Drafts, &counts,
		); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Status = model.RunStatus(status)
		if err := json.Unmarshal([]byte(counts), &run.CategoryCounts); err != nil {
			return nil, fmt.Errorf("failed to decode category counts for run %s: %w", run.ID, err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return runs, nil
}
