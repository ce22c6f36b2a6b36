package domain

type TickerStatus string

const (
	StatusAnalyzed       TickerStatus = "fetched-and-analyzed"
	StatusFetchFailed    TickerStatus = "fetch-failed"
	StatusAnalysisFailed TickerStatus = "analysis-failed"
)

// TickerOutcome records what happened to a single ticker during a batch run.
type TickerOutcome struct {
	Ticker string       `json:"ticker"`
	Status TickerStatus `json:"status"`
	Reason string       `json:"reason,omitempty"`
}

// RankedResult pairs a completed analysis with its trend annotation for
// reporting.
type RankedResult struct {
	Result *AnalysisResult `json:"result"`
	Trend  Trend           `json:"trend"`
}

// BatchResult aggregates one scan run. Partial success is the normal case;
// Results holds only completed analyses, sorted by score descending.
type BatchResult struct {
	RunID           string          `json:"run_id"`
	Results         []RankedResult  `json:"results"`
	Outcomes        []TickerOutcome `json:"outcomes"`
	Fetched         int             `json:"fetched"`
	Analyzed        int             `json:"analyzed"`
	GenuineAdopters int             `json:"genuine_adopters"`
	StrongWashing   int             `json:"strong_washing"`
	MixedSignals    int             `json:"mixed_signals"`
}
