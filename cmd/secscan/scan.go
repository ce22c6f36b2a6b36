package main

import (
	"errors"
	"os"
	"strings"
	"time"

	"secscan/internal/logger"
	"secscan/internal/watchlist"

	"github.com/spf13/cobra"
)

var scanFlags = struct {
	file        string
	watchlist   string
	output      string
	cacheDir    string
	dbPath      string
	reasoner    string
	reasonerCmd string
	contextFile string
}{}

var scanCmd = &cobra.Command{
	Use:   "scan [tickers...]",
	Short: "Fetch and analyze the latest 10-K for each ticker",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanFlags.file, "file", "f", "", "read tickers from a file (one per line)")
	scanCmd.Flags().StringVarP(&scanFlags.watchlist, "watchlist", "w", "", "read tickers from a watchlist (.txt or .csv)")
	scanCmd.Flags().StringVarP(&scanFlags.output, "output", "o", "report.html", "output HTML report path")
	scanCmd.Flags().StringVar(&scanFlags.cacheDir, "cache-dir", ".cache", "filing and analysis cache directory")
	scanCmd.Flags().StringVar(&scanFlags.dbPath, "db", "scan_history.db", "scan history database path")
	scanCmd.Flags().StringVar(&scanFlags.reasoner, "reasoner", "claude", "reasoning backend: claude or openai")
	scanCmd.Flags().StringVar(&scanFlags.reasonerCmd, "reasoner-cmd", "", "override the reasoning CLI command")
	scanCmd.Flags().StringVar(&scanFlags.contextFile, "context", "project_context.md", "optional context block prefixed to every prompt")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	tickers := append([]string{}, args...)

	if scanFlags.file != "" {
		fromFile, err := watchlist.Load(scanFlags.file)
		if err != nil {
			return err
		}
		tickers = append(tickers, fromFile...)
	}
	if scanFlags.watchlist != "" {
		var (
			fromList []string
			err      error
		)
		if strings.HasSuffix(scanFlags.watchlist, ".csv") {
			fromList, err = watchlist.LoadCSV(scanFlags.watchlist)
		} else {
			fromList, err = watchlist.Load(scanFlags.watchlist)
		}
		if err != nil {
			return err
		}
		logger.Info("loaded %d tickers from %s", len(fromList), scanFlags.watchlist)
		tickers = append(tickers, fromList...)
	}

	tickers = watchlist.Normalize(tickers)
	if len(tickers) == 0 {
		return errors.New("no tickers provided; use: secscan scan MSFT NVDA or secscan scan --file tickers.txt")
	}

	deps, err := initializeDependencies(scanOptions{
		cacheDir:    scanFlags.cacheDir,
		dbPath:      scanFlags.dbPath,
		reasoner:    scanFlags.reasoner,
		reasonerCmd: scanFlags.reasonerCmd,
		contextFile: scanFlags.contextFile,
	})
	if err != nil {
		return err
	}
	defer deps.Close()

	batch, err := deps.ScanService.Run(cmd.Context(), tickers)
	if err != nil {
		return err
	}

	html, err := deps.ReportService.Render(batch, time.Now())
	if err != nil {
		return err
	}
	if err := os.WriteFile(scanFlags.output, []byte(html), 0o644); err != nil {
		return err
	}
	logger.Info("report saved to %s", scanFlags.output)
	return nil
}
