package adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "testgenie.dev/pkg/testgenie/internal/model"
)

func newTestReportStore(t *testing.T) *SQLiteReportStore {
	t.Helper()

	store := NewSQLiteReportStore(m.Path(filepath.Join(t.TempDir(), "nested", "history.db")))
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestSQLiteReportStore_SaveAndLoad(t *testing.T) {
	store := newTestReportStore(t)
	ctx := context.Background()

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	report := m.BatchReport{
		ProjectType: m.Python,
		Roots:       []m.Path{"/work/a", "/work/b"},
		StartedAt:   start,
		FinishedAt:  start.Add(time.Minute),
		Results: []m.GenerationResult{
			{Source: "/work/a/app/services/billing.py", TestFilePath: "/work/a/tests/app/services/billing_test.py", Status: m.Success},
			{Source: "/work/a/app/utils/money.py", Status: m.Failed, Reason: "quota exceeded"},
		},
	}

	runID, err := store.SaveReport(ctx, report)
	require.NoError(t, err)

	_, err = uuid.Parse(runID)
	require.NoError(t, err, "generated run id should be a uuid")

	summaries, err := store.LoadReports(ctx, 10)
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	got := summaries[0]
	assert.Equal(t, runID, got.RunID)
	assert.Equal(t, "python", got.ProjectType)
	assert.Equal(t, report.Roots, got.Roots)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, 1, got.Succeeded)
	assert.Equal(t, 1, got.Failed)
	assert.True(t, got.StartedAt.Equal(start))

	results, err := store.LoadResults(ctx, runID)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, m.Success, results[0].Status)
	assert.Equal(t, m.Failed, results[1].Status)
	assert.Equal(t, "quota exceeded", results[1].Reason)
}

func TestSQLiteReportStore_MostRecentFirstWithLimit(t *testing.T) {
	store := newTestReportStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"old", "mid", "new"} {
		_, err := store.SaveReport(ctx, m.BatchReport{
			RunID:       id,
			ProjectType: m.NodeJS,
			StartedAt:   base.Add(time.Duration(i) * time.Hour),
			FinishedAt:  base.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}

	summaries, err := store.LoadReports(ctx, 2)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "new", summaries[0].RunID)
	assert.Equal(t, "mid", summaries[1].RunID)

	all, err := store.LoadReports(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSQLiteReportStore_DuplicateRunID(t *testing.T) {
	store := newTestReportStore(t)
	ctx := context.Background()

	_, err := store.SaveReport(ctx, m.BatchReport{RunID: "same", ProjectType: m.Java})
	require.NoError(t, err)

	_, err = store.SaveReport(ctx, m.BatchReport{RunID: "same", ProjectType: m.Java})
	assert.Error(t, err)
}

func TestSQLiteReportStore_CloseIsIdempotent(t *testing.T) {
	store := newTestReportStore(t)

	require.NoError(t, store.Close())

	_, err := store.LoadReports(context.Background(), 1)
	require.NoError(t, err, "store reopens after close")
	require.NoError(t, store.Close())
	require.NoError(t, store.Close())
}
