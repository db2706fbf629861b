package main

import (
	"github.com/spf13/cobra"

	"github.com/gbazo/bibproc/internal/cache"
	"github.com/gbazo/bibproc/internal/config"
)

var (
	cacheFile    string
	cacheBackend string
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the lookup cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show lookup cache statistics",
	Run:   runCacheInfo,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop every cached lookup, negative entries included",
	Run:   runCacheClear,
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.PersistentFlags().StringVar(&cacheFile, "cache", "", "Lookup cache file (default: config)")
	cacheCmd.PersistentFlags().StringVar(&cacheBackend, "cache-backend", "", "Cache persistence: jsonl or sqlite (default: config)")
}

// CacheInfoResponse is the JSON output of cache info.
type CacheInfoResponse struct {
	Path      string `json:"path"`
	Backend   string `json:"backend"`
	Entries   int    `json:"entries"`
	Negatives int    `json:"negatives"`
}

func loadCache() (*cache.Cache, *config.Config, func()) {
	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if cacheFile != "" {
		cfg.CachePath = cacheFile
	}
	if cacheBackend != "" {
		cfg.CacheBackend = cacheBackend
	}
	if err := cfg.ValidateBackend(); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		exitWithError(ExitConfigError, "opening cache: %v", err)
	}

	c := cache.New(store)
	c.Load()
	return c, cfg, closeStore
}

func runCacheInfo(cmd *cobra.Command, args []string) {
	c, cfg, closeStore := loadCache()
	defer closeStore()

	if humanOutput {
		outputHuman("Cache: %s (%s)\n", cfg.CachePath, cfg.CacheBackend)
		outputHuman("  Entries: %d\n", c.Len())
		outputHuman("  Negatives: %d\n", c.Negatives())
		return
	}
	outputJSON(CacheInfoResponse{
		Path:      cfg.CachePath,
		Backend:   cfg.CacheBackend,
		Entries:   c.Len(),
		Negatives: c.Negatives(),
	})
}

func runCacheClear(cmd *cobra.Command, args []string) {
	c, cfg, closeStore := loadCache()
	defer closeStore()

	if err := c.Clear(); err != nil {
		exitWithError(ExitError, "clearing cache: %v", err)
	}

	if humanOutput {
		outputHuman("Cache cleared: %s\n", cfg.CachePath)
		return
	}
	outputJSON(StatusResponse{Status: "cleared", Path: cfg.CachePath})
}
