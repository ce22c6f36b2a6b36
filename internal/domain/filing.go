package domain

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// Filing is one regulatory document instance under analysis. The document
// source builds it once per scan; it is never mutated and never persisted
// directly — only its cache-derived artifacts are.
type Filing struct {
	Ticker     string `json:"ticker"`
	Company    string `json:"company"`
	FilingDate string `json:"date"`
	SourceURL  string `json:"url"`
	Text       string `json:"text"`
}

// FilingFingerprint is the derived identity of a filing and the cache key for
// both its raw text and its analysis. Two filings with equal fingerprints are
// treated as the same document. The url hash is truncated md5, which keeps
// keys short; collisions between distinct real filings are accepted risk.
type FilingFingerprint struct {
	Ticker     string
	FilingDate string
	URLHash    string
}

func NewFilingFingerprint(ticker, filingDate, sourceURL string) FilingFingerprint {
	sum := md5.Sum([]byte(sourceURL))
	return FilingFingerprint{
		Ticker:     strings.ToUpper(strings.TrimSpace(ticker)),
		FilingDate: filingDate,
		URLHash:    hex.EncodeToString(sum[:])[:8],
	}
}

// Key returns the stable string form used to address cache artifacts.
func (f FilingFingerprint) Key() string {
	return fmt.Sprintf("%s_%s_%s", f.Ticker, f.FilingDate, f.URLHash)
}

func (f Filing) Fingerprint() FilingFingerprint {
	return NewFilingFingerprint(f.Ticker, f.FilingDate, f.SourceURL)
}
