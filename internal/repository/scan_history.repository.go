package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"secscan/internal/domain"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// ScanHistoryRepository is the append-only log of every analysis ever
// produced, keyed by ticker. Entries are never updated or deleted; trend
// ordering follows insertion order, not filing date. Single-writer only —
// concurrent writers are out of scope.
type ScanHistoryRepository interface {
	Append(ctx context.Context, result *domain.AnalysisResult, scanRunID uuid.UUID) error
	GetHistory(ctx context.Context, ticker string) ([]domain.HistoryEntry, error)
	GetTrend(ctx context.Context, ticker string) (domain.Trend, error)
	ListTickers(ctx context.Context) ([]string, error)
	Close() error
}

type scanHistoryRepositoryHandler struct {
	db *sql.DB
}

// NewScanHistoryRepository opens (or creates) the history database at path
// and applies the schema. Setup is idempotent so no provisioning step exists.
func NewScanHistoryRepository(path string) (ScanHistoryRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history db %s: %w", path, err)
	}
	h := scanHistoryRepositoryHandler{db: db}
	if err := h.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return h, nil
}

func (h scanHistoryRepositoryHandler) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scan_history (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			ticker           TEXT NOT NULL,
			company          TEXT,
			score            INTEGER NOT NULL,
			verdict          TEXT,
			disclosure_style TEXT,
			filing_date      TEXT,
			scanned_at       TIMESTAMP NOT NULL,
			scan_run_id      TEXT,
			scores_json      TEXT,
			takeaway         TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scan_history_ticker ON scan_history(ticker);`,
	}
	for _, stmt := range stmts {
		if _, err := h.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to migrate history db: %w", err)
		}
	}
	return nil
}

func (h scanHistoryRepositoryHandler) Close() error { return h.db.Close() }

func (h scanHistoryRepositoryHandler) Append(ctx context.Context, result *domain.AnalysisResult, scanRunID uuid.UUID) error {
	scoresJSON, err := json.Marshal(result.DimensionScores)
	if err != nil {
		return fmt.Errorf("failed to encode dimension scores: %w", err)
	}
	_, err = h.db.ExecContext(ctx, `INSERT INTO scan_history
		(ticker, company, score, verdict, disclosure_style, filing_date, scanned_at, scan_run_id, scores_json, takeaway)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		strings.ToUpper(result.Ticker),
		result.Company,
		result.TotalScore,
		string(result.Verdict),
		string(result.DisclosureStyle),
		result.FilingDate,
		time.Now().UTC(),
		scanRunID.String(),
		string(scoresJSON),
		result.Takeaway,
	)
	if err != nil {
		return fmt.Errorf("failed to append scan history for %s: %w", result.Ticker, err)
	}
	return nil
}

func (h scanHistoryRepositoryHandler) GetHistory(ctx context.Context, ticker string) ([]domain.HistoryEntry, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT id, ticker, company, score, verdict, disclosure_style, filing_date, scanned_at, scan_run_id, scores_json, takeaway
		FROM scan_history WHERE ticker = ? ORDER BY id ASC`,
		strings.ToUpper(strings.TrimSpace(ticker)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan history for %s: %w", ticker, err)
	}
	defer rows.Close()

	entries := []domain.HistoryEntry{}
	for rows.Next() {
		var (
			entry      domain.HistoryEntry
			verdict    string
			style      string
			scoresJSON string
		)
		err := rows.Scan(
			&entry.ID,
			&entry.Ticker,
			&entry.Company,
			&entry.Score,
			&verdict,
			&style,
			&entry.FilingDate,
			&entry.ScannedAt,
			&entry.ScanRunID,
			&scoresJSON,
			&entry.Takeaway,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		entry.Verdict = domain.Verdict(verdict)
		entry.DisclosureStyle = domain.ParseDisclosureStyle(style)
		// scores_json is best-effort display data; a corrupt blob does not
		// invalidate the entry
		_ = json.Unmarshal([]byte(scoresJSON), &entry.DimensionScores)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scan history for %s: %w", ticker, err)
	}
	return entries, nil
}

func (h scanHistoryRepositoryHandler) GetTrend(ctx context.Context, ticker string) (domain.Trend, error) {
	entries, err := h.GetHistory(ctx, ticker)
	if err != nil {
		return domain.TrendNew, err
	}
	scores := make([]int, 0, len(entries))
	for _, entry := range entries {
		scores = append(scores, entry.Score)
	}
	return domain.TrendFromScores(scores), nil
}

func (h scanHistoryRepositoryHandler) ListTickers(ctx context.Context) ([]string, error) {
	rows, err := h.db.QueryContext(ctx, `SELECT DISTINCT ticker FROM scan_history ORDER BY ticker ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list scanned tickers: %w", err)
	}
	defer rows.Close()

	tickers := []string{}
	for rows.Next() {
		var ticker string
		if err := rows.Scan(&ticker); err != nil {
			return nil, fmt.Errorf("failed to scan ticker row: %w", err)
		}
		tickers = append(tickers, ticker)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scanned tickers: %w", err)
	}
	return tickers, nil
}
