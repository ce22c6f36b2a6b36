package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FilingFingerprint(t *testing.T) {
	t.Run("key format", func(t *testing.T) {
		fingerprint := NewFilingFingerprint("msft ", "2025-07-30", "https://example.com/msft-10k.htm")
		require.Equal(t, "MSFT", fingerprint.Ticker)
		require.Equal(t, "2025-07-30", fingerprint.FilingDate)
		require.Len(t, fingerprint.URLHash, 8)
		require.Equal(t, "MSFT_2025-07-30_"+fingerprint.URLHash, fingerprint.Key())
	})

	t.Run("same url yields same hash", func(t *testing.T) {
		a := NewFilingFingerprint("NVDA", "2025-02-26", "https://example.com/a")
		b := NewFilingFingerprint("NVDA", "2025-02-26", "https://example.com/a")
		require.Equal(t, a, b)
	})

	t.Run("different url yields different hash", func(t *testing.T) {
		a := NewFilingFingerprint("NVDA", "2025-02-26", "https://example.com/a")
		b := NewFilingFingerprint("NVDA", "2025-02-26", "https://example.com/b")
		require.NotEqual(t, a.URLHash, b.URLHash)
	})

	t.Run("filing fingerprint uses its own fields", func(t *testing.T) {
		filing := Filing{
			Ticker:     "aapl",
			FilingDate: "2024-11-01",
			SourceURL:  "https://example.com/aapl",
		}
		require.Equal(t, NewFilingFingerprint("AAPL", "2024-11-01", "https://example.com/aapl"), filing.Fingerprint())
	})
}
