package main

import (
	"fmt"
	"strings"

	"secscan/internal/repository"

	"github.com/spf13/cobra"
)

var cacheDir string

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the filing and analysis cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache entry counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := repository.NewFilingCacheRepository(cacheDir)
		if err != nil {
			return err
		}
		cacheStats, err := cache.Stats()
		if err != nil {
			return err
		}
		fmt.Printf("cached filings: %d\ncached analyses: %d\n", cacheStats.CachedFilings, cacheStats.CachedAnalyses)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear TICKER",
	Short: "Remove all cached data for a ticker (forces re-fetch and re-analysis)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := repository.NewFilingCacheRepository(cacheDir)
		if err != nil {
			return err
		}
		removed, err := cache.Clear(strings.ToUpper(args[0]))
		if err != nil {
			return err
		}
		fmt.Printf("removed %d cache entries\n", removed)
		return nil
	},
}

func init() {
	cacheCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", ".cache", "filing and analysis cache directory")
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
