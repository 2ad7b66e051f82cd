package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"naver-keyword-analyzer/models"
	"naver-keyword-analyzer/utils"
)

// ListingSource supplies the ranked listing set and total match count for a
// keyword.
type ListingSource interface {
	Search(ctx context.Context, keyword string) ([]*models.Listing, int, error)
}

// CountFallback recovers a total listing count when the primary source
// cannot provide one. Best effort; 0 means unknown.
type CountFallback interface {
	TotalCount(ctx context.Context, keyword string) int
}

// VolumeSource supplies monthly search volume. Implementations degrade to a
// zero stat rather than failing — a missing volume never aborts the batch.
type VolumeSource interface {
	MonthlyVolume(ctx context.Context, keyword string) models.KeywordStat
}

// Pipeline drives the per-keyword fetch → score flow. Keywords are
// independent, so the pool fans them out; output preserves input order.
type Pipeline struct {
	listings  ListingSource
	counts    CountFallback
	volumes   VolumeSource
	analyzer  *Analyzer
	logger    *utils.Logger
	workers   int
	rateLimit int
}

// NewPipeline wires the collaborators together. counts may be nil when no
// fallback scraper is configured.
func NewPipeline(listings ListingSource, counts CountFallback, volumes VolumeSource,
	analyzer *Analyzer, logger *utils.Logger, workers, rateLimitMs int) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		listings:  listings,
		counts:    counts,
		volumes:   volumes,
		analyzer:  analyzer,
		logger:    logger,
		workers:   workers,
		rateLimit: rateLimitMs,
	}
}

// Run analyzes the given keywords and returns the flattened row sequence:
// for each keyword with data, one summary row followed by its listing rows.
// Keywords are trimmed and deduplicated; a failing keyword is logged and
// skipped without aborting the rest. Every row is stamped with one run ID
// and the batch timestamp.
func (p *Pipeline) Run(ctx context.Context, keywords []string) []*models.ReportRow {
	seen := utils.NewKeywordSet()
	var batch []string
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" || !seen.Add(kw) {
			continue
		}
		batch = append(batch, kw)
	}

	results := make([][]*models.ReportRow, len(batch))
	pool := utils.NewWorkerPool(p.workers, p.rateLimit)
	for i, kw := range batch {
		i, kw := i, kw
		pool.Submit(func() {
			results[i] = p.analyzeKeyword(ctx, kw)
		})
	}
	pool.Wait()

	runID := uuid.NewString()
	now := time.Now()

	var rows []*models.ReportRow
	for _, rs := range results {
		for _, r := range rs {
			r.RunID = runID
			r.AnalyzedAt = now
			rows = append(rows, r)
		}
	}
	return rows
}

func (p *Pipeline) analyzeKeyword(ctx context.Context, keyword string) []*models.ReportRow {
	listings, total, err := p.listings.Search(ctx, keyword)
	if err != nil {
		p.logger.Error("[pipeline] %q: listing fetch failed: %v", keyword, err)
		return nil
	}

	if total == 0 && p.counts != nil {
		total = p.counts.TotalCount(ctx, keyword)
	}

	stat := p.volumes.MonthlyVolume(ctx, keyword)

	return p.analyzer.Analyze(keyword, listings, total, stat)
}
