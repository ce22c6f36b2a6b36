package repository

import (
	"context"
	"path/filepath"
	"testing"

	"secscan/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestHistory(t *testing.T) ScanHistoryRepository {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan_history.db")
	history, err := NewScanHistoryRepository(path)
	require.NoError(t, err)
	t.Cleanup(func() { history.Close() })
	return history
}

func historyResult(ticker string, score int) *domain.AnalysisResult {
	return &domain.AnalysisResult{
		Ticker:     ticker,
		Company:    ticker + " Inc",
		FilingDate: "2025-07-30",
		DimensionScores: map[string]int{
			"SPECIFICITY": score / 2,
		},
		TotalScore:      score,
		Verdict:         domain.VerdictForScore(score),
		DisclosureStyle: domain.DisclosureStandard,
		Takeaway:        "takeaway",
	}
}

func Test_ScanHistoryRepository_AppendAndGetHistory(t *testing.T) {
	history := newTestHistory(t)
	ctx := context.Background()
	runID := uuid.New()

	require.NoError(t, history.Append(ctx, historyResult("msft", 50), runID))
	require.NoError(t, history.Append(ctx, historyResult("MSFT", 62), runID))
	require.NoError(t, history.Append(ctx, historyResult("NVDA", 92), runID))

	entries, err := history.GetHistory(ctx, "msft")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// insertion order, oldest first
	require.Equal(t, 50, entries[0].Score)
	require.Equal(t, 62, entries[1].Score)
	require.Less(t, entries[0].ID, entries[1].ID)

	require.Equal(t, "MSFT", entries[0].Ticker)
	require.Equal(t, domain.VerdictMixedSignals, entries[0].Verdict)
	require.Equal(t, domain.VerdictGenuineAdopter, entries[1].Verdict)
	require.Equal(t, runID.String(), entries[0].ScanRunID)
	require.Equal(t, "", cmp.Diff(map[string]int{"SPECIFICITY": 25}, entries[0].DimensionScores))
	require.False(t, entries[0].ScannedAt.IsZero())
}

func Test_ScanHistoryRepository_GetTrend(t *testing.T) {
	history := newTestHistory(t)
	ctx := context.Background()
	runID := uuid.New()

	trend, err := history.GetTrend(ctx, "MSFT")
	require.NoError(t, err)
	require.Equal(t, domain.TrendNew, trend)

	require.NoError(t, history.Append(ctx, historyResult("MSFT", 50), runID))
	trend, err = history.GetTrend(ctx, "MSFT")
	require.NoError(t, err)
	require.Equal(t, domain.TrendNew, trend)

	require.NoError(t, history.Append(ctx, historyResult("MSFT", 62), runID))
	trend, err = history.GetTrend(ctx, "MSFT")
	require.NoError(t, err)
	require.Equal(t, domain.TrendImproving, trend)
}

func Test_ScanHistoryRepository_ListTickers(t *testing.T) {
	history := newTestHistory(t)
	ctx := context.Background()
	runID := uuid.New()

	tickers, err := history.ListTickers(ctx)
	require.NoError(t, err)
	require.Empty(t, tickers)

	require.NoError(t, history.Append(ctx, historyResult("NVDA", 92), runID))
	require.NoError(t, history.Append(ctx, historyResult("AAPL", 44), runID))
	require.NoError(t, history.Append(ctx, historyResult("NVDA", 90), runID))

	tickers, err = history.ListTickers(ctx)
	require.NoError(t, err)
	require.Equal(t, "", cmp.Diff([]string{"AAPL", "NVDA"}, tickers))
}

func Test_ScanHistoryRepository_ReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan_history.db")
	ctx := context.Background()

	history, err := NewScanHistoryRepository(path)
	require.NoError(t, err)
	require.NoError(t, history.Append(ctx, historyResult("MSFT", 70), uuid.New()))
	require.NoError(t, history.Close())

	// migration is idempotent on an existing database
	reopened, err := NewScanHistoryRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	entries, err := reopened.GetHistory(ctx, "MSFT")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 70, entries[0].Score)
}
