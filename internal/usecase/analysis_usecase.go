package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"career-match/internal/domain/matching"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

type AnalysisInput struct {
	Text      string
	URL       string
	RequestID string
	Source    string
}

type JobTextFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type ProfileSource interface {
	Profile(ctx context.Context, candidateID uuid.UUID) (matching.Profile, error)
}

type CatalogSource interface {
	Vocabulary(ctx context.Context) (*matching.Vocabulary, error)
	Courses(ctx context.Context) ([]matching.Resource, error)
}

type AnalysisUsecase interface {
	Analyze(ctx context.Context, candidateID uuid.UUID, in AnalysisInput) (matching.AnalysisResult, error)
	AnalyzeProfile(ctx context.Context, text string, profile matching.Profile) (matching.AnalysisResult, error)
	History(ctx context.Context, candidateID uuid.UUID, limit int) ([]repository.AnalysisRecord, error)
}

type Analysis struct {
	catalog     CatalogSource
	profiles    ProfileSource
	results     repository.AnalysisRepository
	fetcher     JobTextFetcher
	cache       Cache
	courseLimit int
	logger      *log.Logger
}

type AnalysisOptions struct {
	Results     repository.AnalysisRepository
	Fetcher     JobTextFetcher
	Cache       Cache
	CourseLimit int
	Logger      *log.Logger
}

func NewAnalysisUsecase(catalog CatalogSource, profiles ProfileSource, opts AnalysisOptions) *Analysis {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.CourseLimit <= 0 {
		opts.CourseLimit = matching.DefaultResourceLimit
	}
	return &Analysis{
		catalog:     catalog,
		profiles:    profiles,
		results:     opts.Results,
		fetcher:     opts.Fetcher,
		cache:       cacheOrNoop(opts.Cache),
		courseLimit: opts.CourseLimit,
		logger:      opts.Logger,
	}
}

func (u *Analysis) Analyze(ctx context.Context, candidateID uuid.UUID, in AnalysisInput) (matching.AnalysisResult, error) {
	if candidateID == uuid.Nil {
		return matching.AnalysisResult{}, ErrUnauthorized
	}

	text, source, err := u.resolveText(ctx, in)
	if err != nil {
		return matching.AnalysisResult{}, err
	}

	key := AnalysisCacheKey(candidateID, text)
	var cached matching.AnalysisResult
	if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		u.logger.Printf("usecase=analysis status=cache_hit candidate_id=%s score=%d", candidateID, cached.Score)
		return cached, nil
	}

	profile, err := u.profiles.Profile(ctx, candidateID)
	if err != nil {
		return matching.AnalysisResult{}, err
	}

	start := time.Now()
	res, err := u.AnalyzeProfile(ctx, text, profile)
	if err != nil {
		return matching.AnalysisResult{}, err
	}

	if !res.ResourcesUnavailable {
		if err := u.cache.SetJSON(ctx, key, res, 0); err != nil {
			u.logger.Printf("[Cache] set failed key=%s err=%v", key, err)
		}
	}
	u.persist(ctx, candidateID, in.RequestID, source, res)

	u.logger.Printf("usecase=analysis status=ok candidate_id=%s source=%s required=%d score=%d duration_ms=%d",
		candidateID, source, len(res.RequiredSkills), res.Score, time.Since(start).Milliseconds())
	return res, nil
}

// AnalyzeProfile runs the engine against an explicit profile. A missing course
// catalog degrades the result instead of failing it.
func (u *Analysis) AnalyzeProfile(ctx context.Context, text string, profile matching.Profile) (matching.AnalysisResult, error) {
	vocab, err := u.catalog.Vocabulary(ctx)
	if err != nil {
		return matching.AnalysisResult{}, err
	}

	courses, courseErr := u.catalog.Courses(ctx)
	if courseErr != nil {
		u.logger.Printf("usecase=analysis status=degraded reason=courses err=%v", courseErr)
		courses = nil
	}

	if err := ctx.Err(); err != nil {
		return matching.AnalysisResult{}, err
	}

	analyzer := matching.NewAnalyzer(matching.NewKeywordExtractor(vocab, nil), u.courseLimit)
	res := analyzer.Analyze(text, profile, courses)
	res.ResourcesUnavailable = courseErr != nil

	if err := ctx.Err(); err != nil {
		return matching.AnalysisResult{}, err
	}
	return res, nil
}

func (u *Analysis) History(ctx context.Context, candidateID uuid.UUID, limit int) ([]repository.AnalysisRecord, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	if u.results == nil {
		return []repository.AnalysisRecord{}, nil
	}
	items, err := u.results.ListByCandidate(ctx, candidateID, limit)
	if err != nil {
		return nil, internal(err)
	}
	return items, nil
}

func (u *Analysis) resolveText(ctx context.Context, in AnalysisInput) (string, string, error) {
	source := strings.TrimSpace(in.Source)
	if in.Text != "" {
		if source == "" {
			source = "text"
		}
		return in.Text, source, nil
	}

	url := strings.TrimSpace(in.URL)
	if url == "" {
		return "", "", fmt.Errorf("%w: text or url is required", ErrInvalidInput)
	}
	if u.fetcher == nil {
		return "", "", fmt.Errorf("%w: url fetching is disabled", ErrInvalidInput)
	}

	text, err := u.fetcher.Fetch(ctx, url)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", "", err
		}
		return "", "", fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	if source == "" {
		source = "url"
	}
	return text, source, nil
}

func (u *Analysis) persist(ctx context.Context, candidateID uuid.UUID, requestID, source string, res matching.AnalysisResult) {
	if u.results == nil {
		return
	}
	b, err := json.Marshal(res)
	if err != nil {
		u.logger.Printf("usecase=analysis status=persist_failed candidate_id=%s err=%v", candidateID, err)
		return
	}
	saved, err := u.results.Save(ctx, repository.AnalysisRecord{
		CandidateID: candidateID,
		RequestID:   requestID,
		Source:      source,
		Score:       res.Score,
		Result:      b,
	})
	if err != nil {
		u.logger.Printf("usecase=analysis status=persist_failed candidate_id=%s err=%v", candidateID, err)
		return
	}
	if !saved {
		u.logger.Printf("usecase=analysis status=duplicate candidate_id=%s request_id=%s", candidateID, requestID)
	}
}
