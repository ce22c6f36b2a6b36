package main

import (
	"fmt"
	"strings"

	"secscan/internal/repository"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
)

var historyDbPath string

var historyCmd = &cobra.Command{
	Use:   "history [TICKER]",
	Short: "Show scan history and trend for a ticker, or list scanned tickers",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&historyDbPath, "db", "scan_history.db", "scan history database path")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	scanHistory, err := repository.NewScanHistoryRepository(historyDbPath)
	if err != nil {
		return err
	}
	defer scanHistory.Close()

	if len(args) == 0 {
		tickers, err := scanHistory.ListTickers(cmd.Context())
		if err != nil {
			return err
		}
		if len(tickers) == 0 {
			fmt.Println("no scan history yet")
			return nil
		}
		for _, ticker := range tickers {
			fmt.Println(ticker)
		}
		return nil
	}

	ticker := strings.ToUpper(args[0])
	entries, err := scanHistory.GetHistory(cmd.Context(), ticker)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("no scan history for %s\n", ticker)
		return nil
	}

	fmt.Printf("\n%s — scan history (%d scans)\n", ticker, len(entries))
	fmt.Println(strings.Repeat("-", 50))
	scores := make([]float64, 0, len(entries))
	for _, entry := range entries {
		fmt.Printf("  %s  score: %3d/100  %s  [%s]\n",
			entry.ScannedAt.Format("2006-01-02"), entry.Score, entry.Verdict, entry.DisclosureStyle)
		scores = append(scores, float64(entry.Score))
	}

	trend, err := scanHistory.GetTrend(cmd.Context(), ticker)
	if err != nil {
		return err
	}
	mean, _ := stats.Mean(scores)
	low, _ := stats.Min(scores)
	high, _ := stats.Max(scores)
	fmt.Printf("\n  trend: %s  mean: %.1f  min: %.0f  max: %.0f\n",
		strings.ToUpper(string(trend)), mean, low, high)
	return nil
}
