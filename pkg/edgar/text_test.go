package edgar

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_extractText(t *testing.T) {
	t.Run("skips inline xbrl bookkeeping", func(t *testing.T) {
		raw := `<html><body>
			<ix:header><ix:references>schema refs</ix:references></ix:header>
			<p>Revenue was <ix:nonFraction>1000</ix:nonFraction> million.</p>
			<div>Our AI strategy is central to the business.</div>
		</body></html>`
		text := extractText(raw)
		require.NotContains(t, text, "schema refs")
		require.Contains(t, text, "Revenue was")
		require.Contains(t, text, "Our AI strategy is central to the business.")
	})

	t.Run("collapses separator runs and blank lines", func(t *testing.T) {
		raw := "<html><body><pre>Part I\n\n\n\n__________________\nItem 1\n==========================\n</pre></body></html>"
		text := extractText(raw)
		require.NotContains(t, text, "____")
		require.NotContains(t, text, "====")
		require.Contains(t, text, "Part I")
		require.Contains(t, text, "Item 1")
	})

	t.Run("plain text passes through trimmed", func(t *testing.T) {
		require.Equal(t, "plain text only", extractText("  plain text only  "))
	})
}
