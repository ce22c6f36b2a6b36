package domain

// The five scoring dimensions, each 0-10. Order matters for prompt
// construction and report rendering.
var ScoringDimensions = []string{
	"SPECIFICITY",
	"FINANCIAL_IMPACT",
	"INTEGRATION_DEPTH",
	"COMPETITIVE_MOAT",
	"EXECUTION_EVIDENCE",
}

const MaxDimensionScore = 10

type Verdict string

const (
	VerdictGenuineAdopter Verdict = "Genuine AI Adopter"
	VerdictStrongWashing  Verdict = "Strong AI Washing"
	VerdictMixedSignals   Verdict = "Mixed Signals"
)

const (
	genuineAdopterThreshold = 60
	strongWashingThreshold  = 40
)

// VerdictForScore classifies a total score. The verdict is always derived
// from the recomputed score, never taken from the reasoning service.
func VerdictForScore(total int) Verdict {
	switch {
	case total >= genuineAdopterThreshold:
		return VerdictGenuineAdopter
	case total < strongWashingThreshold:
		return VerdictStrongWashing
	}
	return VerdictMixedSignals
}

type DisclosureStyle string

const (
	DisclosureVerbose      DisclosureStyle = "verbose"
	DisclosureConservative DisclosureStyle = "conservative"
	DisclosureStandard     DisclosureStyle = "standard"
)

// ParseDisclosureStyle maps a raw tag to a known style, falling back to
// standard for anything absent or unrecognized.
func ParseDisclosureStyle(raw string) DisclosureStyle {
	switch DisclosureStyle(raw) {
	case DisclosureVerbose, DisclosureConservative, DisclosureStandard:
		return DisclosureStyle(raw)
	}
	return DisclosureStandard
}

// AnalysisResult is the validated scoring output for one filing. It is
// created once per reasoning-service call, cached indefinitely, and fully
// re-derivable from the five dimension scores.
type AnalysisResult struct {
	Ticker          string          `json:"ticker"`
	Company         string          `json:"company"`
	FilingDate      string          `json:"date"`
	DimensionScores map[string]int  `json:"scores"`
	TotalScore      int             `json:"score"`
	Verdict         Verdict         `json:"verdict"`
	RawVerdict      string          `json:"raw_verdict,omitempty"`
	Findings        []string        `json:"findings"`
	Flags           []string        `json:"flags"`
	Takeaway        string          `json:"takeaway"`
	DisclosureStyle DisclosureStyle `json:"disclosure_style"`
}

// TotalFromDimensions recomputes the 0-100 total: five dimensions 0-10 each,
// doubled.
func TotalFromDimensions(scores map[string]int) int {
	sum := 0
	for _, dim := range ScoringDimensions {
		sum += scores[dim]
	}
	return sum * 2
}
