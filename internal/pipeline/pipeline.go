// Package pipeline orchestrates the scan: fetch, extract, parse, aggregate,
// render. The record pipeline itself is a synchronous batch run; each stage
// takes the previous stage's output and returns a new value.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"vitae/internal/aggregate"
	"vitae/internal/cache"
	"vitae/internal/extract"
	"vitae/internal/llm"
	"vitae/internal/model"
)

// Pipeline wires the scan stages together
type Pipeline struct {
	fetcher   *Fetcher
	extractor *extract.TableExtractor
	renderer  *Renderer
	narrator  *llm.Narrator // nil when no provider configured
	cfg       *model.Config
	log       zerolog.Logger
}

// NewPipeline builds a pipeline from the configuration
func NewPipeline(cfg *model.Config, log zerolog.Logger) *Pipeline {
	var pages cache.Cache
	if cfg.Cache.Enabled {
		pages = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	var narrator *llm.Narrator
	if cfg.LLM.Provider != "" {
		n, err := llm.NewNarrator(cfg.LLM)
		if err != nil {
			log.Warn().Err(err).Msg("LLM provider unavailable; narrative disabled")
		} else {
			narrator = n
		}
	}

	return &Pipeline{
		fetcher:   NewFetcher(cfg.HTTP, pages, log),
		extractor: extract.NewTableExtractor(cfg.Extract.TableClass, cfg.Extract.Column),
		renderer:  NewRenderer(cfg.Report.IncludeFooter),
		narrator:  narrator,
		cfg:       cfg,
		log:       log,
	}
}

// Scan fetches the page at url and produces the complete report
func (p *Pipeline) Scan(ctx context.Context, url string) (*model.Report, error) {
	fetched, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	p.log.Info().Str("subject", fetched.Subject).Bool("cached", fetched.FromCache).Msg("page ready")

	report := &model.Report{
		Subject:     fetched.Subject,
		SourceURL:   fetched.FinalURL,
		FetchedAt:   time.Now().UTC(),
		FromCache:   fetched.FromCache,
		FetchMeta:   fetched.Meta,
		CurrentYear: p.currentYear(),
	}

	records, skipped, err := p.Parse(fetched.HTML)
	if err != nil {
		return nil, err
	}
	report.Skipped = skipped
	report.Records = aggregate.Derive(records)
	p.log.Info().Int("records", len(report.Records)).Int("skipped", len(skipped)).Msg("records parsed")

	summary, err := aggregate.Summarize(report.Records)
	if err != nil {
		var empty *model.EmptyDatasetError
		if !errors.As(err, &empty) {
			return nil, fmt.Errorf("summarize: %w", err)
		}
		// A living-only dataset still charts; the summary table is simply
		// absent.
		p.log.Warn().Msg("no deceased records; summary omitted")
	} else {
		report.Summary = summary
	}

	if p.narrator != nil {
		narrative, err := p.narrator.Narrate(ctx, report)
		if err != nil {
			p.log.Warn().Err(err).Msg("narrative generation failed; continuing")
		} else {
			report.Narrative = narrative
		}
	}

	return report, nil
}

// Parse extracts the composite cells from the document and parses each one.
// Under the strict policy the first bad cell aborts; under skip-malformed
// bad cells are collected as diagnostics and the rest proceed.
func (p *Pipeline) Parse(html string) ([]model.Record, []model.SkippedRecord, error) {
	cells, err := p.extractor.Extract(html)
	if err != nil {
		return nil, nil, err
	}

	records := make([]model.Record, 0, len(cells))
	var skipped []model.SkippedRecord
	for i, cell := range cells {
		rec, err := extract.ParseCell(i, cell)
		if err != nil {
			if !p.cfg.Report.SkipMalformed {
				return nil, nil, err
			}
			var perr *model.ParseError
			if errors.As(err, &perr) {
				p.log.Warn().Int("index", perr.Index).Str("cell", perr.Cell).Str("reason", perr.Reason).Msg("skipping malformed record")
				skipped = append(skipped, model.SkippedRecord{
					Index:     perr.Index,
					Name:      perr.Name,
					Remainder: perr.Remainder,
					Cell:      perr.Cell,
					Reason:    perr.Reason,
				})
				continue
			}
			return nil, nil, err
		}
		if rec.Ambiguous {
			p.log.Warn().Int("index", i).Str("name", rec.Name).Msg("cell matched both year formats; range used")
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

// Renderer exposes the pipeline's renderer for output handling
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

func (p *Pipeline) currentYear() int {
	if p.cfg.Report.CurrentYear != 0 {
		return p.cfg.Report.CurrentYear
	}
	return time.Now().Year()
}
