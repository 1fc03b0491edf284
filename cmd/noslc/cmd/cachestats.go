package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cacheStatsCmd = &cobra.Command{
	Use:   "cache-stats",
	Short: "Print size and age statistics for a compiled-unit cache",
	Args:  cobra.NoArgs,
	RunE:  runCacheStats,
}

var flagStatsCachePath string

func init() {
	cacheStatsCmd.Flags().StringVar(&flagStatsCachePath, "cache", "noslc-cache.db", "path to the compiled-unit cache")
}

func runCacheStats(_ *cobra.Command, _ []string) error {
	cache, err := OpenCache(flagStatsCachePath)
	if err != nil {
		return err
	}
	rows, oldest, newest, err := cache.Stats()
	if err != nil {
		return err
	}
	if rows == 0 {
		fmt.Printf("%s: empty\n", flagStatsCachePath)
		return nil
	}
	fmt.Printf("%s: %d cached unit(s), oldest %s, newest %s\n", flagStatsCachePath, rows, oldest, newest)
	return nil
}
