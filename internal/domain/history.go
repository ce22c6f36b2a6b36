package domain

import "time"

// HistoryEntry is one persisted observation of an analysis for a ticker.
// Entries are append-only: never updated, never individually deleted.
type HistoryEntry struct {
	ID              int64           `json:"id"`
	Ticker          string          `json:"ticker"`
	Company         string          `json:"company"`
	Score           int             `json:"score"`
	Verdict         Verdict         `json:"verdict"`
	DisclosureStyle DisclosureStyle `json:"disclosure_style"`
	FilingDate      string          `json:"filing_date"`
	ScannedAt       time.Time       `json:"scanned_at"`
	ScanRunID       string          `json:"scan_run_id"`
	DimensionScores map[string]int  `json:"dimension_scores,omitempty"`
	Takeaway        string          `json:"takeaway,omitempty"`
}

// Trend classifies score movement over a trailing window of history entries.
// It is derived on read, never stored.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
	TrendNew       Trend = "new"
)

const (
	trendWindow    = 3
	trendNoiseGate = 5
)

// TrendFromScores classifies movement across scores ordered oldest first.
// Fewer than 2 entries is new. Otherwise the most recent score is compared
// to the earliest of the trailing window; moves must exceed the ±5 noise
// gate to count as material.
func TrendFromScores(scores []int) Trend {
	if len(scores) < 2 {
		return TrendNew
	}
	window := scores
	if len(window) > trendWindow {
		window = window[len(window)-trendWindow:]
	}
	earliest := window[0]
	recent := window[len(window)-1]
	switch {
	case recent > earliest+trendNoiseGate:
		return TrendImproving
	case recent < earliest-trendNoiseGate:
		return TrendDeclining
	}
	return TrendStable
}
