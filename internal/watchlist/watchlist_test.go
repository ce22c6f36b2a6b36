package watchlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_Load(t *testing.T) {
	t.Run("skips blanks and comments", func(t *testing.T) {
		path := writeTempFile(t, "tickers.txt", "# tech watchlist\nMSFT\n\n  NVDA  \n# banks\nJPM\n")
		tickers, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]string{"MSFT", "NVDA", "JPM"}, tickers))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
		require.Error(t, err)
	})
}

func Test_LoadCSV(t *testing.T) {
	t.Run("reads the ticker column, ignores the rest", func(t *testing.T) {
		path := writeTempFile(t, "watchlist.csv", "ticker,sector,weight\nMSFT,tech,0.4\nNVDA,tech,0.3\n,cash,0.3\n")
		tickers, err := LoadCSV(path)
		require.NoError(t, err)
		require.Equal(t, "", cmp.Diff([]string{"MSFT", "NVDA"}, tickers))
	})

	t.Run("missing ticker column yields no tickers", func(t *testing.T) {
		path := writeTempFile(t, "watchlist.csv", "symbol,sector\nMSFT,tech\n")
		tickers, err := LoadCSV(path)
		require.NoError(t, err)
		require.Empty(t, tickers)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
	})
}

func Test_Normalize(t *testing.T) {
	got := Normalize([]string{" msft ", "NVDA", "msft", "", "nvda", "jpm"})
	require.Equal(t, "", cmp.Diff([]string{"MSFT", "NVDA", "JPM"}, got))
}
