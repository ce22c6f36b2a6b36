package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"secscan/internal/domain"
)

type CacheStats struct {
	CachedFilings  int `json:"cached_filings"`
	CachedAnalyses int `json:"cached_analyses"`
}

// FilingCacheRepository is the content-addressed cache for fetched filing
// text and computed analyses, both keyed by fingerprint. Gets are pure reads;
// puts overwrite idempotently. A corrupt stored analysis reads as a miss so
// the orchestrator falls through to recomputation and heals it on the next
// write.
type FilingCacheRepository interface {
	GetText(fingerprint domain.FilingFingerprint) (string, bool, error)
	PutText(fingerprint domain.FilingFingerprint, text string) error
	GetAnalysis(fingerprint domain.FilingFingerprint) (*domain.AnalysisResult, bool, error)
	PutAnalysis(fingerprint domain.FilingFingerprint, result *domain.AnalysisResult) error
	Stats() (*CacheStats, error)
	Clear(ticker string) (int, error)
}

type filingCacheRepositoryHandler struct {
	dir string
}

func NewFilingCacheRepository(dir string) (FilingCacheRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir %s: %w", dir, err)
	}
	return filingCacheRepositoryHandler{dir: dir}, nil
}

const analysisSuffix = "_analysis.json"

func (h filingCacheRepositoryHandler) textPath(fp domain.FilingFingerprint) string {
	return filepath.Join(h.dir, fp.Key()+".txt")
}

func (h filingCacheRepositoryHandler) analysisPath(fp domain.FilingFingerprint) string {
	return filepath.Join(h.dir, fp.Key()+analysisSuffix)
}

func (h filingCacheRepositoryHandler) GetText(fp domain.FilingFingerprint) (string, bool, error) {
	data, err := os.ReadFile(h.textPath(fp))
	if err != nil {
		// missing or unreadable both read as a miss
		return "", false, nil
	}
	return string(data), true, nil
}

func (h filingCacheRepositoryHandler) PutText(fp domain.FilingFingerprint, text string) error {
	if err := os.WriteFile(h.textPath(fp), []byte(text), 0o644); err != nil {
		return fmt.Errorf("failed to cache filing text for %s: %w", fp.Key(), err)
	}
	return nil
}

func (h filingCacheRepositoryHandler) GetAnalysis(fp domain.FilingFingerprint) (*domain.AnalysisResult, bool, error) {
	data, err := os.ReadFile(h.analysisPath(fp))
	if err != nil {
		return nil, false, nil
	}
	result := domain.AnalysisResult{}
	if err := json.Unmarshal(data, &result); err != nil {
		// corrupt artifact; treat as absent and let the next put heal it
		return nil, false, nil
	}
	return &result, true, nil
}

func (h filingCacheRepositoryHandler) PutAnalysis(fp domain.FilingFingerprint, result *domain.AnalysisResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis for %s: %w", fp.Key(), err)
	}
	if err := os.WriteFile(h.analysisPath(fp), data, 0o644); err != nil {
		return fmt.Errorf("failed to cache analysis for %s: %w", fp.Key(), err)
	}
	return nil
}

func (h filingCacheRepositoryHandler) Stats() (*CacheStats, error) {
	texts, err := filepath.Glob(filepath.Join(h.dir, "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("failed to list cached filings: %w", err)
	}
	analyses, err := filepath.Glob(filepath.Join(h.dir, "*"+analysisSuffix))
	if err != nil {
		return nil, fmt.Errorf("failed to list cached analyses: %w", err)
	}
	return &CacheStats{
		CachedFilings:  len(texts),
		CachedAnalyses: len(analyses),
	}, nil
}

func (h filingCacheRepositoryHandler) Clear(ticker string) (int, error) {
	pattern := filepath.Join(h.dir, strings.ToUpper(strings.TrimSpace(ticker))+"_*")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return 0, fmt.Errorf("failed to list cache entries for %s: %w", ticker, err)
	}
	removed := 0
	for _, path := range matches {
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		removed++
	}
	return removed, nil
}
