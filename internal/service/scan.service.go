package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"secscan/internal/domain"
	"secscan/internal/logger"
	"secscan/internal/repository"

	"github.com/google/uuid"
)

var (
	// ErrNoFilingsFetched terminates a batch in which every document fetch
	// failed.
	ErrNoFilingsFetched = errors.New("no filings could be fetched")
	// ErrNoAnalyses terminates a batch in which every analysis failed.
	ErrNoAnalyses = errors.New("no filings could be analyzed")
)

// ScanService runs the fetch → analyze → persist pipeline across a batch of
// tickers. Processing is strictly sequential and best-effort: individual
// failures become per-ticker skips, and the batch fails only when nothing
// was fetched or nothing was analyzed.
type ScanService interface {
	Run(ctx context.Context, tickers []string) (*domain.BatchResult, error)
}

type scanServiceHandler struct {
	FilingRepository      repository.FilingRepository
	AnalysisService       AnalysisService
	ScanHistoryRepository repository.ScanHistoryRepository
}

func NewScanService(
	filingRepository repository.FilingRepository,
	analysisService AnalysisService,
	scanHistoryRepository repository.ScanHistoryRepository,
) ScanService {
	return scanServiceHandler{
		FilingRepository:      filingRepository,
		AnalysisService:       analysisService,
		ScanHistoryRepository: scanHistoryRepository,
	}
}

func (h scanServiceHandler) Run(ctx context.Context, tickers []string) (*domain.BatchResult, error) {
	runID := uuid.New()
	batch := &domain.BatchResult{RunID: runID.String()}

	logger.Info("analyzing %d companies: %s", len(tickers), strings.Join(tickers, ", "))

	logger.Info("[1/3] fetching 10-K filings from SEC EDGAR")
	filings := []domain.Filing{}
	for _, ticker := range tickers {
		filing, err := h.FilingRepository.FetchFiling(ctx, ticker)
		if err != nil {
			logger.Warn("[%s] skipped — could not fetch filing: %v", ticker, err)
			batch.Outcomes = append(batch.Outcomes, domain.TickerOutcome{
				Ticker: ticker,
				Status: domain.StatusFetchFailed,
				Reason: err.Error(),
			})
			continue
		}
		filings = append(filings, *filing)
	}
	batch.Fetched = len(filings)
	if batch.Fetched == 0 {
		return batch, ErrNoFilingsFetched
	}

	logger.Info("[2/3] analyzing %d filings", len(filings))
	for _, filing := range filings {
		result, err := h.AnalysisService.Analyze(ctx, filing)
		if err != nil {
			logger.Warn("[%s] skipped — analysis failed: %v", filing.Ticker, err)
			batch.Outcomes = append(batch.Outcomes, domain.TickerOutcome{
				Ticker: filing.Ticker,
				Status: domain.StatusAnalysisFailed,
				Reason: err.Error(),
			})
			continue
		}

		if err := h.ScanHistoryRepository.Append(ctx, result, runID); err != nil {
			return nil, err
		}
		trend, err := h.ScanHistoryRepository.GetTrend(ctx, result.Ticker)
		if err != nil {
			logger.Warn("[%s] could not derive trend: %v", result.Ticker, err)
			trend = domain.TrendNew
		}

		h.logResult(result, trend)
		batch.Results = append(batch.Results, domain.RankedResult{Result: result, Trend: trend})
		batch.Outcomes = append(batch.Outcomes, domain.TickerOutcome{
			Ticker: result.Ticker,
			Status: domain.StatusAnalyzed,
		})
		switch result.Verdict {
		case domain.VerdictGenuineAdopter:
			batch.GenuineAdopters++
		case domain.VerdictStrongWashing:
			batch.StrongWashing++
		default:
			batch.MixedSignals++
		}
	}
	batch.Analyzed = len(batch.Results)
	if batch.Analyzed == 0 {
		return batch, ErrNoAnalyses
	}

	sort.SliceStable(batch.Results, func(i, j int) bool {
		return batch.Results[i].Result.TotalScore > batch.Results[j].Result.TotalScore
	})

	logger.Info("[3/3] %d companies analyzed (genuine: %d, washing: %d, mixed: %d)",
		batch.Analyzed, batch.GenuineAdopters, batch.StrongWashing, batch.MixedSignals)
	return batch, nil
}

func (h scanServiceHandler) logResult(result *domain.AnalysisResult, trend domain.Trend) {
	note := ""
	if trend != domain.TrendNew {
		note = " [" + string(trend) + "]"
	}
	if result.DisclosureStyle == domain.DisclosureConservative {
		note += " (conservative filer)"
	}
	logger.Info("[%s] score: %d/100 — %s%s", result.Ticker, result.TotalScore, result.Verdict, note)
}
