package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"vitae/internal/cache"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the fetched-page cache",
	Long: `Manage the local cache of fetched pages (~/.vitae/cache).

The cache lets repeated scans of the same URL run without re-fetching
until the entry expires.`,
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := defaultCacheDir()
		disk := cache.NewDiskCache(dir, 24*time.Hour)

		entries, bytes, err := disk.Info()
		if err != nil {
			return fmt.Errorf("read cache: %w", err)
		}

		fmt.Printf("Cache directory: %s\n", dir)
		fmt.Printf("Entries: %d\n", entries)
		fmt.Printf("Size: %.1f KiB\n", float64(bytes)/1024)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached pages",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := defaultCacheDir()
		disk := cache.NewDiskCache(dir, 24*time.Hour)

		if err := disk.Clear(); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		fmt.Printf("Cleared cache: %s\n", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
