package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/gbazo/bibproc/internal/batch"
	"github.com/gbazo/bibproc/internal/biblio"
	"github.com/gbazo/bibproc/internal/books"
	"github.com/gbazo/bibproc/internal/cache"
	"github.com/gbazo/bibproc/internal/config"
	"github.com/gbazo/bibproc/internal/jobs"
	"github.com/gbazo/bibproc/internal/sheet"
)

var (
	processOutDir  string
	processCache   string
	processBackend string
	processRate    float64
	processRefresh bool
)

var processCmd = &cobra.Command{
	Use:   "process <workbook.xlsx>",
	Short: "Enrich a bibliography workbook with Google Books metadata",
	Long: `Enrich a bibliography workbook with Google Books metadata.

Reads the "Bibliografia" sheet, looks up each titled row, classifies it and
fills the type-specific columns, then runs the law pass and writes
bibliografia_processada_<job>.xlsx to the output directory.

Lookups are cached; a re-run over the same workbook issues no new requests.
Use --refresh to bypass the cache, e.g. after a provider outage poisoned it
with negative entries.

Examples:
  bibproc process bibliografia.xlsx
  bibproc process bibliografia.xlsx --output-dir processed --human
  bibproc process bibliografia.xlsx --refresh --rate 0.5`,
	Args: cobra.ExactArgs(1),
	Run:  runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
	processCmd.Flags().StringVarP(&processOutDir, "output-dir", "o", "", "Directory for the processed workbook (default: config or .)")
	processCmd.Flags().StringVar(&processCache, "cache", "", "Lookup cache file (default: config)")
	processCmd.Flags().StringVar(&processBackend, "cache-backend", "", "Cache persistence: jsonl or sqlite (default: config)")
	processCmd.Flags().Float64Var(&processRate, "rate", 0, "Outbound requests per second (default: 1 per 1.2s)")
	processCmd.Flags().BoolVar(&processRefresh, "refresh", false, "Bypass the cache and refresh every entry")
}

func runProcess(cmd *cobra.Command, args []string) {
	// API key may live in a .env file next to the workbook.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if processOutDir != "" {
		cfg.OutputDir = processOutDir
	}
	if processCache != "" {
		cfg.CachePath = processCache
	}
	if processBackend != "" {
		cfg.CacheBackend = processBackend
	}
	if processRate > 0 {
		cfg.RateLimit = processRate
	}
	if err := cfg.ValidateBackend(); err != nil {
		exitWithError(ExitConfigError, "%v", err)
	}

	// Input errors surface before any job exists.
	rows, err := sheet.Read(args[0])
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %v", args[0], err)
	}

	store, closeStore, err := openStore(cfg)
	if err != nil {
		exitWithError(ExitConfigError, "opening cache: %v", err)
	}
	defer closeStore()

	lookupCache := cache.New(store, cache.WithBypass(processRefresh))
	lookupCache.Load()

	var clientOpts []books.ClientOption
	if cfg.APIKey != "" {
		clientOpts = append(clientOpts, books.WithAPIKey(cfg.APIKey))
	}
	if cfg.RateLimit > 0 {
		clientOpts = append(clientOpts, books.WithRateLimit(cfg.RateLimit))
	}
	client := books.NewClient(clientOpts...)

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		exitWithError(ExitError, "creating output directory: %v", err)
	}

	registry := jobs.NewRegistry()
	job := registry.Create(len(rows), "Processando bibliografia...")

	processor := &batch.Processor{
		Lookup:   books.NewService(client, lookupCache),
		Registry: registry,
		Cache:    lookupCache,
		OutDir:   cfg.OutputDir,
	}

	done := make(chan error, 1)
	go func() {
		done <- processor.Run(context.Background(), job.ID, rows)
	}()

	pollJob(registry, job.ID, done)

	final, err := registry.Get(job.ID)
	if err != nil {
		exitWithError(ExitError, "job vanished: %v", err)
	}
	if final.Status == jobs.StatusError {
		exitWithError(ExitAPIError, "processing failed: %s", final.Message)
	}

	if humanOutput {
		printSummary(final)
	} else {
		outputJSON(final)
	}
}

// pollJob watches the registry until the batch goroutine finishes, printing
// progress along the way in human mode.
func pollJob(registry *jobs.Registry, jobID string, done <-chan error) {
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if !humanOutput {
				continue
			}
			job, err := registry.Get(jobID)
			if err != nil {
				continue
			}
			fmt.Fprintf(os.Stderr, "\r%3d%% %s", job.Progress, job.Message)
		}
	}
}

// printSummary prints the completed-job statistics the way the original
// status page did: found percentage first, then the type distribution.
func printSummary(job jobs.Job) {
	fmt.Fprintln(os.Stderr)
	outputHuman("Processamento concluído: %s\n", job.OutputFile)
	if job.Stats == nil {
		return
	}
	total := job.Total
	if total > 0 {
		outputHuman("  Encontrados: %d (%.1f%%)\n", job.Stats.Found, float64(job.Stats.Found)/float64(total)*100)
	} else {
		outputHuman("  Encontrados: %d\n", job.Stats.Found)
	}
	outputHuman("  Não encontrados: %d\n", job.Stats.NotFound)
	for _, t := range biblio.AllTypes {
		if n := job.Stats.Types[string(t)]; n > 0 {
			outputHuman("  %s: %d\n", t, n)
		}
	}
}

// openStore builds the configured cache store. The returned func releases
// any held resources.
func openStore(cfg *config.Config) (cache.Store, func(), error) {
	if dir := filepath.Dir(cfg.CachePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, nil, err
		}
	}
	switch cfg.CacheBackend {
	case config.BackendSQLite:
		store, err := cache.OpenSQLiteStore(cfg.CachePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { store.Close() }, nil
	default:
		return cache.NewJSONLStore(cfg.CachePath), func() {}, nil
	}
}
