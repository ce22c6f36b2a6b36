package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"secscan/internal/domain"
	"secscan/internal/logger"
	"secscan/internal/repository"
)

// AnalysisService scores one filing through the external reasoning service,
// with content-addressed caching: at most one external call is ever made per
// filing fingerprint, and failed calls are never cached.
type AnalysisService interface {
	Analyze(ctx context.Context, filing domain.Filing) (*domain.AnalysisResult, error)
}

type analysisServiceHandler struct {
	FilingCacheRepository repository.FilingCacheRepository
	ReasonerRepository    repository.ReasonerRepository
	ContextBlock          string
}

// NewAnalysisService constructs the orchestrator. contextBlock, when
// non-empty, is prefixed to every prompt between --- markers.
func NewAnalysisService(cache repository.FilingCacheRepository, reasoner repository.ReasonerRepository, contextBlock string) AnalysisService {
	return analysisServiceHandler{
		FilingCacheRepository: cache,
		ReasonerRepository:    reasoner,
		ContextBlock:          contextBlock,
	}
}

const analysisPromptTemplate = `You are analyzing a SEC 10-K filing for evidence of genuine AI adoption vs. AI washing.

Company: %s — %s
Filing date: %s

Score this company on these 5 dimensions (0-10 each):
1. SPECIFICITY: Are AI implementations specific (named products, use cases) or vague buzzwords?
2. FINANCIAL_IMPACT: Is there quantified revenue/cost impact from AI?
3. INTEGRATION_DEPTH: How deeply is AI woven into core business vs. bolt-on?
4. COMPETITIVE_MOAT: Does AI create defensible competitive advantage?
5. EXECUTION_EVIDENCE: Are there concrete deployments, partnerships, or milestones?

Also provide:
- 3 key findings (specific evidence from the filing)
- 2-3 red flags (concerns or gaps)
- 1 investment takeaway (2-3 sentences)
- Verdict: "Genuine AI Adopter" (score >= 60) or "Strong AI Washing" (score < 40) or "Mixed Signals" (40-59)
- disclosure_style: One of "verbose" | "conservative" | "standard"
  - "verbose": company explicitly details AI products, metrics, and strategy (e.g. NVDA, MSFT)
  - "conservative": company historically understates in filings vs. public reality (e.g. AAPL, JPM)
  - "standard": typical disclosure depth for their sector

Output as JSON:
{
  "scores": {"SPECIFICITY": X, "FINANCIAL_IMPACT": X, "INTEGRATION_DEPTH": X, "COMPETITIVE_MOAT": X, "EXECUTION_EVIDENCE": X},
  "findings": ["...", "...", "..."],
  "flags": ["...", "...", "..."],
  "takeaway": "...",
  "verdict": "...",
  "disclosure_style": "..."
}

IMPORTANT: Output ONLY the JSON object, no markdown code fences, no extra text.

FILING TEXT:
%s`

func (h analysisServiceHandler) Analyze(ctx context.Context, filing domain.Filing) (*domain.AnalysisResult, error) {
	fingerprint := filing.Fingerprint()

	cached, ok, err := h.FilingCacheRepository.GetAnalysis(fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to read analysis cache for %s: %w", filing.Ticker, err)
	}
	if ok {
		logger.Debug("[%s] using cached analysis (score: %d)", filing.Ticker, cached.TotalScore)
		return cached, nil
	}

	logger.Debug("[%s] running reasoner analysis", filing.Ticker)
	raw, err := h.ReasonerRepository.Invoke(ctx, h.buildPrompt(filing))
	if err != nil {
		return nil, err
	}

	payload, err := parseReasonerOutput(raw)
	if err != nil {
		return nil, err
	}

	result := h.normalize(filing, payload)
	if err := h.FilingCacheRepository.PutAnalysis(fingerprint, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (h analysisServiceHandler) buildPrompt(filing domain.Filing) string {
	prompt := fmt.Sprintf(analysisPromptTemplate, filing.Ticker, filing.Company, filing.FilingDate, filing.Text)
	if h.ContextBlock != "" {
		prompt = fmt.Sprintf("---\n%s\n---\n\n%s", h.ContextBlock, prompt)
	}
	return prompt
}

type reasonerPayload struct {
	Scores          map[string]float64 `json:"scores"`
	Findings        []string           `json:"findings"`
	Flags           []string           `json:"flags"`
	Takeaway        string             `json:"takeaway"`
	Verdict         string             `json:"verdict"`
	DisclosureStyle string             `json:"disclosure_style"`
}

// stripCodeFences removes markdown fence lines that some reasoner frontends
// wrap around the JSON despite instructions.
func stripCodeFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	lines := []string{}
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func parseReasonerOutput(raw string) (*reasonerPayload, error) {
	payload := reasonerPayload{}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &payload); err != nil {
		return nil, domain.NewMalformedResponseError(err, raw)
	}
	return &payload, nil
}

// normalize turns an untrusted payload into a validated result. Missing
// dimensions default to 0, out-of-range scores are clamped, the total and
// verdict are recomputed rather than trusted, and the self-reported verdict
// string is kept only as display data.
func (h analysisServiceHandler) normalize(filing domain.Filing, payload *reasonerPayload) *domain.AnalysisResult {
	scores := make(map[string]int, len(domain.ScoringDimensions))
	for _, dim := range domain.ScoringDimensions {
		score := int(math.Round(payload.Scores[dim]))
		if score < 0 {
			score = 0
		}
		if score > domain.MaxDimensionScore {
			score = domain.MaxDimensionScore
		}
		scores[dim] = score
	}

	total := domain.TotalFromDimensions(scores)
	return &domain.AnalysisResult{
		Ticker:          filing.Ticker,
		Company:         filing.Company,
		FilingDate:      filing.FilingDate,
		DimensionScores: scores,
		TotalScore:      total,
		Verdict:         domain.VerdictForScore(total),
		RawVerdict:      strings.TrimSpace(payload.Verdict),
		Findings:        payload.Findings,
		Flags:           payload.Flags,
		Takeaway:        payload.Takeaway,
		DisclosureStyle: domain.ParseDisclosureStyle(payload.DisclosureStyle),
	}
}
