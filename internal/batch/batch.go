// Package batch orchestrates one enrichment pass over a bibliography.
package batch

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/gbazo/bibproc/internal/biblio"
	"github.com/gbazo/bibproc/internal/cache"
	"github.com/gbazo/bibproc/internal/jobs"
	"github.com/gbazo/bibproc/internal/law"
	"github.com/gbazo/bibproc/internal/mapper"
	"github.com/gbazo/bibproc/internal/sheet"
)

// Lookuper answers metadata lookups. Satisfied by books.Service.
type Lookuper interface {
	Lookup(ctx context.Context, title, author string) (*biblio.Metadata, error)
}

// Processor runs batch jobs. Rows are processed strictly sequentially; the
// lookup service's own rate limiter paces outbound calls, so cached re-runs
// pay no delay.
type Processor struct {
	Lookup   Lookuper
	Registry *jobs.Registry
	Cache    *cache.Cache // optional; flushed once at the end of a run
	OutDir   string

	// WriteSheet writes the output workbook. Defaults to sheet.Write.
	WriteSheet func(path string, rows []biblio.Row) error
}

// Run processes all rows for the given job: lookup, classify, map, the law
// pass, output artifact, cache flush. Any failure (including a panic in a
// pipeline stage) marks the job as errored instead of crashing the process;
// an errored job yields no output artifact.
func (p *Processor) Run(ctx context.Context, jobID string, rows []biblio.Row) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("batch panic: %v", r)
		}
		if err != nil {
			p.Registry.Fail(jobID, err.Error())
		}
	}()

	writeSheet := p.WriteSheet
	if writeSheet == nil {
		writeSheet = sheet.Write
	}

	total := len(rows)
	stats := biblio.NewStats()
	result := make([]biblio.Row, total)
	copy(result, rows)

	for i, row := range rows {
		// Rows without a title are skipped: no lookup, no mapping, no
		// found/not-found count. They still advance progress.
		if strings.TrimSpace(row.Title) != "" {
			meta, lookupErr := p.Lookup.Lookup(ctx, row.Title, row.Author)
			if lookupErr != nil {
				return fmt.Errorf("looking up %q: %w", row.Title, lookupErr)
			}
			if meta != nil {
				result[i] = mapper.Apply(row, meta)
				stats.Count(meta.CitationType)
			} else {
				stats.NotFound++
			}
		}

		progress := int(math.Round(float64(i+1) / float64(total) * 100))
		p.Registry.Update(jobID, progress, fmt.Sprintf("Processado %d de %d registros", i+1, total))
	}

	result = law.Process(result)

	outputFile := "bibliografia_processada_" + jobID + ".xlsx"
	if err := writeSheet(filepath.Join(p.OutDir, outputFile), result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if p.Cache != nil {
		if err := p.Cache.Flush(); err != nil {
			return fmt.Errorf("flushing cache: %w", err)
		}
	}

	p.Registry.Complete(jobID, stats, outputFile)
	return nil
}
