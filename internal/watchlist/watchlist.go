package watchlist

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
)

// Load reads tickers from a plain-text watchlist: one ticker per line, blank
// lines and '#' comments skipped.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open watchlist %s: %w", path, err)
	}
	defer f.Close()

	tickers := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tickers = append(tickers, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read watchlist %s: %w", path, err)
	}
	return tickers, nil
}

type csvRow struct {
	Ticker string `csv:"ticker"`
}

// LoadCSV reads tickers from a csv watchlist with a "ticker" column; other
// columns are ignored.
func LoadCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open watchlist %s: %w", path, err)
	}
	defer f.Close()

	rows := []*csvRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse watchlist %s: %w", path, err)
	}

	tickers := []string{}
	for _, row := range rows {
		if strings.TrimSpace(row.Ticker) != "" {
			tickers = append(tickers, row.Ticker)
		}
	}
	return tickers, nil
}

// Normalize uppercases and trims tickers, dropping duplicates while keeping
// first-seen order.
func Normalize(tickers []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, ticker := range tickers {
		ticker = strings.ToUpper(strings.TrimSpace(ticker))
		if ticker == "" || seen[ticker] {
			continue
		}
		seen[ticker] = true
		out = append(out, ticker)
	}
	return out
}
