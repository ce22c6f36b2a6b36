package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_VerdictForScore(t *testing.T) {
	t.Run("genuine adopter at threshold", func(t *testing.T) {
		require.Equal(t, VerdictGenuineAdopter, VerdictForScore(60))
	})
	t.Run("mixed signals just below adopter threshold", func(t *testing.T) {
		require.Equal(t, VerdictMixedSignals, VerdictForScore(59))
	})
	t.Run("mixed signals at washing threshold", func(t *testing.T) {
		require.Equal(t, VerdictMixedSignals, VerdictForScore(40))
	})
	t.Run("strong washing just below washing threshold", func(t *testing.T) {
		require.Equal(t, VerdictStrongWashing, VerdictForScore(39))
	})
	t.Run("extremes", func(t *testing.T) {
		require.Equal(t, VerdictGenuineAdopter, VerdictForScore(100))
		require.Equal(t, VerdictStrongWashing, VerdictForScore(0))
	})
}

func Test_TotalFromDimensions(t *testing.T) {
	t.Run("sums all dimensions and doubles", func(t *testing.T) {
		total := TotalFromDimensions(map[string]int{
			"SPECIFICITY":        8,
			"FINANCIAL_IMPACT":   7,
			"INTEGRATION_DEPTH":  6,
			"COMPETITIVE_MOAT":   5,
			"EXECUTION_EVIDENCE": 9,
		})
		require.Equal(t, 70, total)
	})

	t.Run("missing dimensions count as zero", func(t *testing.T) {
		total := TotalFromDimensions(map[string]int{
			"SPECIFICITY": 10,
		})
		require.Equal(t, 20, total)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		total := TotalFromDimensions(map[string]int{
			"SPECIFICITY": 3,
			"VIBES":       10,
		})
		require.Equal(t, 6, total)
	})
}

func Test_ParseDisclosureStyle(t *testing.T) {
	require.Equal(t, DisclosureVerbose, ParseDisclosureStyle("verbose"))
	require.Equal(t, DisclosureConservative, ParseDisclosureStyle("conservative"))
	require.Equal(t, DisclosureStandard, ParseDisclosureStyle("standard"))
	require.Equal(t, DisclosureStandard, ParseDisclosureStyle(""))
	require.Equal(t, DisclosureStandard, ParseDisclosureStyle("Verbose"))
	require.Equal(t, DisclosureStandard, ParseDisclosureStyle("garbage"))
}
