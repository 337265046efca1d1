package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"career-match/internal/domain/matching"
	"career-match/internal/worker"

	"github.com/google/uuid"
)

type PostingStore interface {
	ListUntagged(ctx context.Context, limit int) ([]matching.JobPosting, error)
	ReplaceSkills(ctx context.Context, postingID uuid.UUID, skills []matching.RequiredSkill) error
}

type VocabularySource interface {
	Vocabulary(ctx context.Context) (*matching.Vocabulary, error)
}

// TaggingPipeline fills in required skills for postings stored without any,
// by running the keyword extractor over their title and description.
type TaggingPipeline struct {
	postings PostingStore
	vocab    VocabularySource
	log      *log.Logger
	limit    int
}

func NewTaggingPipeline(postings PostingStore, vocab VocabularySource, logger *log.Logger) *TaggingPipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &TaggingPipeline{postings: postings, vocab: vocab, log: logger, limit: 100}
}

type RunParams struct {
	Workers       int
	Limit         int
	RatePerSecond int
}

type RunStats struct {
	Tagged   int
	Failed   int
	Skills   int
	Duration time.Duration
}

func (p *TaggingPipeline) Run(ctx context.Context, params RunParams) (RunStats, error) {
	start := time.Now()
	var stats RunStats
	if p == nil || p.postings == nil || p.vocab == nil {
		return stats, nil
	}

	workers := params.Workers
	if workers <= 0 {
		workers = 5
	}
	limit := params.Limit
	if limit <= 0 {
		limit = p.limit
	}

	vocab, err := p.vocab.Vocabulary(ctx)
	if err != nil {
		return stats, fmt.Errorf("load vocabulary: %w", err)
	}
	extractor := matching.NewKeywordExtractor(vocab, nil)

	for {
		if ctx.Err() != nil {
			return stats, ctx.Err()
		}

		batch, err := p.postings.ListUntagged(ctx, limit)
		if err != nil {
			return stats, err
		}
		if len(batch) == 0 {
			break
		}

		tagged, failed, skills := p.runBatch(ctx, batch, extractor, workers, params.RatePerSecond)
		stats.Tagged += tagged
		stats.Failed += failed
		stats.Skills += skills

		// A batch where nothing succeeded would be listed again unchanged.
		if tagged == 0 {
			break
		}
	}

	stats.Duration = time.Since(start)
	p.log.Printf("pipeline=posting_tagging status=done tagged=%d failed=%d skills=%d duration=%s", stats.Tagged, stats.Failed, stats.Skills, stats.Duration)
	return stats, ctx.Err()
}

func (p *TaggingPipeline) runBatch(ctx context.Context, batch []matching.JobPosting, extractor matching.RequirementExtractor, workers, rps int) (int, int, int) {
	pool := worker.NewPool(workers, workers*2)
	pool.SetRateLimit(rps)
	results := pool.Run(ctx)

	var skills atomic.Int64
	go func() {
		defer pool.Close()
		for _, posting := range batch {
			posting := posting
			ok := pool.Submit(ctx, func(ctx context.Context) error {
				started := time.Now()
				reqs := extractor.Extract(postingText(posting))
				if err := p.postings.ReplaceSkills(ctx, posting.ID, reqs); err != nil {
					p.log.Printf("pipeline=posting_tagging status=error posting_id=%s skills=%d err=%v duration=%s", posting.ID, len(reqs), err, time.Since(started))
					return err
				}
				skills.Add(int64(len(reqs)))
				p.log.Printf("pipeline=posting_tagging status=ok posting_id=%s skills=%d duration=%s", posting.ID, len(reqs), time.Since(started))
				return nil
			})
			if !ok {
				return
			}
		}
	}()

	tagged, failed := 0, 0
	for r := range results {
		if r.Err != nil {
			failed++
			continue
		}
		tagged++
	}
	return tagged, failed, int(skills.Load())
}

func postingText(p matching.JobPosting) string {
	parts := []string{p.Title, p.Description}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
