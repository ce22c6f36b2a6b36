package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	browseURL         = "https://www.sec.gov/cgi-bin/browse-edgar"
	companyTickersURL = "https://www.sec.gov/files/company_tickers.json"
	submissionsURL    = "https://data.sec.gov/submissions/CIK%s.json"
	archivesURL       = "https://www.sec.gov/Archives/edgar/data/%s/%s/%s"

	// SEC asks for at most 10 requests per second
	minRequestInterval = 150 * time.Millisecond

	defaultUserAgent = "secscan/1.0 (research@example.com)"
	maxFilingChars   = 80_000
)

// Client talks to SEC EDGAR: ticker to CIK resolution, company names, latest
// 10-K discovery and filing download. All requests flow through a shared
// throttle so batch scans stay inside the SEC rate guidance.
type Client struct {
	HttpClient *http.Client
	UserAgent  string
	throttle   *Throttle

	// endpoint overrides for tests
	browseURL         string
	companyTickersURL string
	submissionsURL    string
}

func NewClient(userAgent string, timeout time.Duration) *Client {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		HttpClient:        &http.Client{Timeout: timeout},
		UserAgent:         userAgent,
		throttle:          NewThrottle(minRequestInterval),
		browseURL:         browseURL,
		companyTickersURL: companyTickersURL,
		submissionsURL:    submissionsURL,
	}
}

// FilingRef locates one filing inside EDGAR.
type FilingRef struct {
	URL        string
	FilingDate string
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	c.throttle.Wait()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("edgar request failed with status code %d", resp.StatusCode)
	}
	return body, nil
}

var cikPattern = regexp.MustCompile(`CIK=(\d+)`)

// LookupCIK resolves a ticker symbol to its CIK number. It tries the
// browse-edgar atom feed first and falls back to the company tickers index.
// An empty string means the ticker is unknown to EDGAR.
func (c *Client) LookupCIK(ctx context.Context, ticker string) (string, error) {
	url := fmt.Sprintf("%s?action=getcompany&CIK=%s&type=10-K&count=10&output=atom", c.browseURL, ticker)
	body, err := c.get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to query browse-edgar for %s: %w", ticker, err)
	}
	if m := cikPattern.FindSubmatch(body); m != nil {
		return strings.TrimLeft(string(m[1]), "0"), nil
	}

	entries, err := c.companyTickers(ctx)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.Ticker, ticker) {
			return fmt.Sprintf("%d", entry.CIK), nil
		}
	}
	return "", nil
}

type companyTickerEntry struct {
	CIK    int64  `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}

func (c *Client) companyTickers(ctx context.Context) (map[string]companyTickerEntry, error) {
	body, err := c.get(ctx, c.companyTickersURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch company tickers index: %w", err)
	}
	entries := map[string]companyTickerEntry{}
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse company tickers index: %w", err)
	}
	return entries, nil
}

// CompanyName returns the display name for a ticker, or the ticker itself
// when EDGAR has no entry.
func (c *Client) CompanyName(ctx context.Context, ticker string) (string, error) {
	entries, err := c.companyTickers(ctx)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.Ticker, ticker) {
			return entry.Title, nil
		}
	}
	return strings.ToUpper(ticker), nil
}

type submissionsResponse struct {
	Filings struct {
		Recent struct {
			Form            []string `json:"form"`
			AccessionNumber []string `json:"accessionNumber"`
			FilingDate      []string `json:"filingDate"`
			PrimaryDocument []string `json:"primaryDocument"`
		} `json:"recent"`
	} `json:"filings"`
}

// LatestFiling finds the most recent 10-K (or 10-K/A) for a CIK. A nil ref
// with nil error means the company has no 10-K on record.
func (c *Client) LatestFiling(ctx context.Context, cik string) (*FilingRef, error) {
	padded := fmt.Sprintf("%010s", cik)
	body, err := c.get(ctx, fmt.Sprintf(c.submissionsURL, padded))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch submissions for CIK %s: %w", cik, err)
	}

	var subs submissionsResponse
	if err := json.Unmarshal(body, &subs); err != nil {
		return nil, fmt.Errorf("failed to parse submissions for CIK %s: %w", cik, err)
	}

	recent := subs.Filings.Recent
	for i, form := range recent.Form {
		if form != "10-K" && form != "10-K/A" {
			continue
		}
		if i >= len(recent.AccessionNumber) || i >= len(recent.FilingDate) || i >= len(recent.PrimaryDocument) {
			break
		}
		accession := strings.ReplaceAll(recent.AccessionNumber[i], "-", "")
		return &FilingRef{
			URL:        fmt.Sprintf(archivesURL, cik, accession, recent.PrimaryDocument[i]),
			FilingDate: recent.FilingDate[i],
		}, nil
	}
	return nil, nil
}

// DownloadFiling fetches a filing document and reduces it to clean plain
// text, truncated to the analysis length bound.
func (c *Client) DownloadFiling(ctx context.Context, url string) (string, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to download filing: %w", err)
	}
	text := extractText(string(body))
	if len(text) > maxFilingChars {
		text = text[:maxFilingChars]
	}
	return text, nil
}
