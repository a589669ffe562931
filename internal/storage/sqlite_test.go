package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qwicdev/backorder-analyzer/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	s, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testRun(id string, startedAt time.Time) *model.RunSummary {
	return &model.RunSummary{
		ID:                 id,
		StartedAt:          startedAt,
		FinishedAt:         startedAt.Add(2 * time.Second),
		InputPath:          "export.xlsx",
		OutputPath:         "analyse.xlsx",
		EmailReportPath:    "analyse_Emails.xlsx",
		Status:             model.RunCompleted,
		Orders:             4,
		ShippableLines:     7,
		BackorderLines:     3,
		NoAdjustmentOrders: 1,
		Drafts:             2,
		CategoryCounts:     map[int]int{1: 2, 3: 1},
	}
}

func TestSaveRunAndListRuns(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	started := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	require.NoError(t, s.SaveRun(ctx, testRun("run-1", started)))
	require.NoError(t, s.SaveRun(ctx, testRun("run-2", started.Add(time.Hour))))

	runs, err := s.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, "run-2", runs[0].ID)
	assert.Equal(t, "run-1", runs[1].ID)

	got := runs[1]
	assert.Equal(t, "export.xlsx", got.InputPath)
	assert.Equal(t, "analyse.xlsx", got.OutputPath)
	assert.Equal(t, model.RunCompleted, got.Status)
	assert.Equal(t, 4, got.Orders)
	assert.Equal(t, 7, got.ShippableLines)
	assert.Equal(t, 3, got.BackorderLines)
	assert.Equal(t, 1, got.NoAdjustmentOrders)
	assert.Equal(t, 2, got.Drafts)
	assert.Equal(t, map[int]int{1: 2, 3: 1}, got.CategoryCounts)
	assert.True(t, got.StartedAt.Equal(started))
}

func TestSaveRunValidation(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.SaveRun(ctx, nil)
	assert.ErrorIs(t, err, ErrNilRun)

	err = s.SaveRun(ctx, &model.RunSummary{})
	assert.ErrorIs(t, err, ErrEmptyString)

	err = s.SaveRun(nil, testRun("run-1", time.Now())) //nolint:staticcheck // verifies nil-context guard
	assert.ErrorIs(t, err, ErrNilContext)
}

func TestListRunsLimit(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		run := testRun("run-"+string(rune('a'+i)), base.Add(time.Duration(i)*time.Minute))
		require.NoError(t, s.SaveRun(ctx, run))
	}

	runs, err := s.ListRuns(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
	assert.Equal(t, "run-e", runs[0].ID)
}

func TestNewSQLiteStorageCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveRun(context.Background(), testRun("run-1", time.Now())))

	runs, err := s.ListRuns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
