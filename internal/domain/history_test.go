package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_TrendFromScores(t *testing.T) {
	t.Run("no history is new", func(t *testing.T) {
		require.Equal(t, TrendNew, TrendFromScores(nil))
	})

	t.Run("single entry is new", func(t *testing.T) {
		require.Equal(t, TrendNew, TrendFromScores([]int{50}))
	})

	t.Run("move inside noise gate is stable", func(t *testing.T) {
		require.Equal(t, TrendStable, TrendFromScores([]int{50, 55}))
		require.Equal(t, TrendStable, TrendFromScores([]int{50, 45}))
	})

	t.Run("move above noise gate is improving", func(t *testing.T) {
		require.Equal(t, TrendImproving, TrendFromScores([]int{50, 56}))
	})

	t.Run("move below noise gate is declining", func(t *testing.T) {
		require.Equal(t, TrendDeclining, TrendFromScores([]int{50, 44}))
	})

	t.Run("only the trailing window counts", func(t *testing.T) {
		// earliest entry (10) is outside the 3-entry window, so the
		// comparison is 62 vs 55
		require.Equal(t, TrendImproving, TrendFromScores([]int{10, 55, 58, 62}))
		require.Equal(t, TrendStable, TrendFromScores([]int{90, 55, 58, 59}))
	})
}
