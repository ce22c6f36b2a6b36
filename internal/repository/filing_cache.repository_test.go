package repository

import (
	"os"
	"path/filepath"
	"testing"

	"secscan/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) FilingCacheRepository {
	t.Helper()
	cache, err := NewFilingCacheRepository(t.TempDir())
	require.NoError(t, err)
	return cache
}

func Test_FilingCacheRepository_Text(t *testing.T) {
	cache := newTestCache(t)
	fingerprint := domain.NewFilingFingerprint("MSFT", "2025-07-30", "https://example.com/msft")

	t.Run("miss before put", func(t *testing.T) {
		_, ok, err := cache.GetText(fingerprint)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("roundtrip", func(t *testing.T) {
		require.NoError(t, cache.PutText(fingerprint, "Item 1A. Risk Factors"))
		text, ok, err := cache.GetText(fingerprint)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "Item 1A. Risk Factors", text)
	})

	t.Run("put overwrites", func(t *testing.T) {
		require.NoError(t, cache.PutText(fingerprint, "amended text"))
		text, ok, err := cache.GetText(fingerprint)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "amended text", text)
	})
}

func Test_FilingCacheRepository_Analysis(t *testing.T) {
	fingerprint := domain.NewFilingFingerprint("NVDA", "2025-02-26", "https://example.com/nvda")
	result := &domain.AnalysisResult{
		Ticker:     "NVDA",
		Company:    "NVIDIA CORP",
		FilingDate: "2025-02-26",
		DimensionScores: map[string]int{
			"SPECIFICITY":        9,
			"FINANCIAL_IMPACT":   9,
			"INTEGRATION_DEPTH":  10,
			"COMPETITIVE_MOAT":   9,
			"EXECUTION_EVIDENCE": 9,
		},
		TotalScore:      92,
		Verdict:         domain.VerdictGenuineAdopter,
		Findings:        []string{"data center revenue attributed to AI demand"},
		Flags:           []string{"customer concentration"},
		Takeaway:        "core business is the AI buildout itself",
		DisclosureStyle: domain.DisclosureVerbose,
	}

	t.Run("roundtrip", func(t *testing.T) {
		cache := newTestCache(t)
		require.NoError(t, cache.PutAnalysis(fingerprint, result))

		got, ok, err := cache.GetAnalysis(fingerprint)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "", cmp.Diff(result, got))
	})

	t.Run("corrupt artifact reads as miss", func(t *testing.T) {
		dir := t.TempDir()
		cache, err := NewFilingCacheRepository(dir)
		require.NoError(t, err)

		path := filepath.Join(dir, fingerprint.Key()+"_analysis.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, ok, err := cache.GetAnalysis(fingerprint)
		require.NoError(t, err)
		require.False(t, ok)

		// the next put heals the slot
		require.NoError(t, cache.PutAnalysis(fingerprint, result))
		got, ok, err := cache.GetAnalysis(fingerprint)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, result.TotalScore, got.TotalScore)
	})
}

func Test_FilingCacheRepository_StatsAndClear(t *testing.T) {
	cache := newTestCache(t)

	msft := domain.NewFilingFingerprint("MSFT", "2025-07-30", "https://example.com/msft")
	nvda := domain.NewFilingFingerprint("NVDA", "2025-02-26", "https://example.com/nvda")
	require.NoError(t, cache.PutText(msft, "msft filing"))
	require.NoError(t, cache.PutText(nvda, "nvda filing"))
	require.NoError(t, cache.PutAnalysis(msft, &domain.AnalysisResult{Ticker: "MSFT"}))

	cacheStats, err := cache.Stats()
	require.NoError(t, err)
	require.Equal(t, "", cmp.Diff(&CacheStats{CachedFilings: 2, CachedAnalyses: 1}, cacheStats))

	t.Run("clear removes both artifact kinds for one ticker", func(t *testing.T) {
		removed, err := cache.Clear("msft")
		require.NoError(t, err)
		require.Equal(t, 2, removed)

		cacheStats, err := cache.Stats()
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff(&CacheStats{CachedFilings: 1, CachedAnalyses: 0}, cacheStats))
	})

	t.Run("clear on unknown ticker removes nothing", func(t *testing.T) {
		removed, err := cache.Clear("TSLA")
		require.NoError(t, err)
		require.Equal(t, 0, removed)
	})
}
