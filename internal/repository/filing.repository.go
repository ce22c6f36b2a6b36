package repository

import (
	"context"
	"fmt"

	"secscan/internal/domain"
	"secscan/internal/logger"
	"secscan/pkg/edgar"
)

// FilingRepository resolves a ticker to its latest 10-K filing. Raw filing
// text is served from the content cache when the fingerprint is already
// known, so re-scans of an unchanged filing skip the download entirely.
type FilingRepository interface {
	FetchFiling(ctx context.Context, ticker string) (*domain.Filing, error)
}

type filingRepositoryHandler struct {
	EdgarClient           *edgar.Client
	FilingCacheRepository FilingCacheRepository
}

func NewFilingRepository(edgarClient *edgar.Client, cache FilingCacheRepository) FilingRepository {
	return filingRepositoryHandler{
		EdgarClient:           edgarClient,
		FilingCacheRepository: cache,
	}
}

func (h filingRepositoryHandler) FetchFiling(ctx context.Context, ticker string) (*domain.Filing, error) {
	logger.Debug("[%s] looking up CIK", ticker)
	cik, err := h.EdgarClient.LookupCIK(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to look up CIK for %s: %w", ticker, err)
	}
	if cik == "" {
		return nil, fmt.Errorf("%s: %w", ticker, domain.ErrDocumentNotFound)
	}

	company, err := h.EdgarClient.CompanyName(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company name for %s: %w", ticker, err)
	}

	logger.Debug("[%s] CIK=%s, finding latest 10-K", ticker, cik)
	ref, err := h.EdgarClient.LatestFiling(ctx, cik)
	if err != nil {
		return nil, fmt.Errorf("failed to find latest filing for %s: %w", ticker, err)
	}
	if ref == nil {
		return nil, fmt.Errorf("%s: %w", ticker, domain.ErrDocumentNotFound)
	}

	fingerprint := domain.NewFilingFingerprint(ticker, ref.FilingDate, ref.URL)
	text, cached, err := h.FilingCacheRepository.GetText(fingerprint)
	if err != nil {
		return nil, fmt.Errorf("failed to read filing cache for %s: %w", ticker, err)
	}
	if cached {
		logger.Debug("[%s] using cached filing text (%d chars)", ticker, len(text))
	} else {
		logger.Debug("[%s] downloading filing from %s", ticker, ref.FilingDate)
		text, err = h.EdgarClient.DownloadFiling(ctx, ref.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to download filing for %s: %w", ticker, err)
		}
		if err := h.FilingCacheRepository.PutText(fingerprint, text); err != nil {
			return nil, err
		}
		logger.Debug("[%s] got %d chars of clean text", ticker, len(text))
	}

	return &domain.Filing{
		Ticker:     fingerprint.Ticker,
		Company:    company,
		FilingDate: ref.FilingDate,
		SourceURL:  ref.URL,
		Text:       text,
	}, nil
}
