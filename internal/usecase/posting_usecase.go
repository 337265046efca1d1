package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"career-match/internal/domain/matching"
	"career-match/internal/repository"
	"career-match/internal/search"

	"github.com/google/uuid"
)

type FeedParams struct {
	Query          string
	LocationType   string
	Sort           string
	BookmarkedOnly bool
	Limit          int
	Offset         int
}

type PostingMatch struct {
	Posting matching.JobPosting
	Score   matching.PostingScore
}

type CreatePostingInput struct {
	Title          string
	Company        string
	Location       string
	LocationType   string
	Salary         string
	Experience     string
	PostedLabel    string
	PostedAt       *time.Time
	Description    string
	Applicants     int
	CompanySize    string
	RequiredSkills []matching.RequiredSkill
}

type PostingUsecase interface {
	Feed(ctx context.Context, candidateID uuid.UUID, params FeedParams) ([]matching.JobPosting, error)
	Match(ctx context.Context, candidateID uuid.UUID, postingID uuid.UUID) (PostingMatch, error)
	ToggleBookmark(ctx context.Context, candidateID uuid.UUID, postingID uuid.UUID) (bool, error)
	CreatePosting(ctx context.Context, in CreatePostingInput) (matching.JobPosting, error)
}

type Postings struct {
	postings  repository.PostingRepository
	bookmarks repository.BookmarkRepository
	profiles  ProfileSource
	catalog   CatalogSource
	logger    *log.Logger
}

func NewPostingUsecase(postings repository.PostingRepository, bookmarks repository.BookmarkRepository, profiles ProfileSource, catalog CatalogSource, logger *log.Logger) *Postings {
	if logger == nil {
		logger = log.Default()
	}
	return &Postings{postings: postings, bookmarks: bookmarks, profiles: profiles, catalog: catalog, logger: logger}
}

func (u *Postings) Feed(ctx context.Context, candidateID uuid.UUID, params FeedParams) ([]matching.JobPosting, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	locationType := strings.ToLower(strings.TrimSpace(params.LocationType))
	if locationType == "all" {
		locationType = ""
	}
	if locationType != "" {
		lt, ok := matching.ParseLocationType(locationType)
		if !ok {
			return nil, ErrInvalidInput
		}
		locationType = string(lt)
	}
	sortKey, err := matching.ParseSortKey(params.Sort)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if params.Limit < 0 || params.Offset < 0 {
		return nil, ErrInvalidInput
	}

	items, err := u.postings.List(ctx, repository.PostingFilter{LocationType: locationType})
	if err != nil {
		return nil, internal(err)
	}
	profile, err := u.profiles.Profile(ctx, candidateID)
	if err != nil {
		return nil, err
	}
	bookmarked, err := u.bookmarks.ListPostingIDs(ctx, candidateID)
	if err != nil {
		return nil, internal(err)
	}

	q := search.ProcessQuery(params.Query)
	out := make([]matching.JobPosting, 0, len(items))
	for _, p := range items {
		if !q.Matches(postingSearchFields(p)...) {
			continue
		}
		_, p.Bookmarked = bookmarked[p.ID]
		if params.BookmarkedOnly && !p.Bookmarked {
			continue
		}
		score, err := matching.ScorePosting(&p, profile)
		if err != nil {
			return nil, internal(err)
		}
		applyPostingScore(&p, score)
		out = append(out, p)
	}

	ranked := pagePostings(matching.SortPostings(out, sortKey), params.Offset, params.Limit)
	u.logger.Printf("usecase=feed status=ok candidate_id=%s total=%d matched=%d returned=%d sort=%s", candidateID, len(items), len(out), len(ranked), sortKey)
	return ranked, nil
}

// pagePostings slices an already ranked feed. A zero limit keeps the rest.
func pagePostings(items []matching.JobPosting, offset, limit int) []matching.JobPosting {
	if offset >= len(items) {
		return []matching.JobPosting{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func (u *Postings) Match(ctx context.Context, candidateID uuid.UUID, postingID uuid.UUID) (PostingMatch, error) {
	if candidateID == uuid.Nil {
		return PostingMatch{}, ErrUnauthorized
	}
	if postingID == uuid.Nil {
		return PostingMatch{}, ErrInvalidInput
	}

	p, err := u.postings.FindByID(ctx, postingID)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return PostingMatch{}, ErrPostingNotFound
		}
		return PostingMatch{}, internal(err)
	}
	profile, err := u.profiles.Profile(ctx, candidateID)
	if err != nil {
		return PostingMatch{}, err
	}

	score, err := matching.ScorePosting(&p, profile)
	if err != nil {
		return PostingMatch{}, internal(err)
	}
	applyPostingScore(&p, score)
	return PostingMatch{Posting: p, Score: score}, nil
}

func (u *Postings) ToggleBookmark(ctx context.Context, candidateID uuid.UUID, postingID uuid.UUID) (bool, error) {
	if candidateID == uuid.Nil {
		return false, ErrUnauthorized
	}
	if postingID == uuid.Nil {
		return false, ErrInvalidInput
	}
	on, err := u.bookmarks.Toggle(ctx, candidateID, postingID)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return false, ErrPostingNotFound
		}
		return false, internal(err)
	}
	return on, nil
}

// CreatePosting stores a posting. Postings without declared skills are tagged
// from their description when the vocabulary is available; otherwise they stay
// untagged for the tagging pipeline.
func (u *Postings) CreatePosting(ctx context.Context, in CreatePostingInput) (matching.JobPosting, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || in.Applicants < 0 {
		return matching.JobPosting{}, ErrInvalidInput
	}
	lt := matching.LocationOnsite
	if strings.TrimSpace(in.LocationType) != "" {
		v, ok := matching.ParseLocationType(in.LocationType)
		if !ok {
			return matching.JobPosting{}, ErrInvalidInput
		}
		lt = v
	}
	for _, r := range in.RequiredSkills {
		if strings.TrimSpace(r.Name) == "" {
			return matching.JobPosting{}, ErrInvalidInput
		}
		if !isValidLevel(r.RequiredLevel) {
			return matching.JobPosting{}, ErrInvalidRequiredLevel
		}
	}

	p := matching.JobPosting{
		ID:             uuid.New(),
		Title:          title,
		Company:        strings.TrimSpace(in.Company),
		Location:       strings.TrimSpace(in.Location),
		LocationType:   lt,
		Salary:         strings.TrimSpace(in.Salary),
		Experience:     strings.TrimSpace(in.Experience),
		PostedLabel:    strings.TrimSpace(in.PostedLabel),
		PostedAt:       in.PostedAt,
		Description:    in.Description,
		Applicants:     in.Applicants,
		CompanySize:    strings.TrimSpace(in.CompanySize),
		RequiredSkills: in.RequiredSkills,
	}
	if p.PostedAt == nil && p.PostedLabel == "" {
		now := time.Now().UTC()
		p.PostedAt = &now
	}

	reqs, err := matching.PostingRequirements(&p)
	if err != nil {
		return matching.JobPosting{}, ErrInvalidInput
	}
	p.RequiredSkills = reqs
	if len(p.RequiredSkills) == 0 && strings.TrimSpace(p.Description) != "" {
		if vocab, err := u.catalog.Vocabulary(ctx); err == nil {
			p.RequiredSkills = matching.NewKeywordExtractor(vocab, nil).Extract(p.Description)
		} else {
			u.logger.Printf("usecase=posting status=untagged posting_id=%s err=%v", p.ID, err)
		}
	}

	created, err := u.postings.Create(ctx, p)
	if err != nil {
		return matching.JobPosting{}, internal(err)
	}
	return created, nil
}

func postingSearchFields(p matching.JobPosting) []string {
	fields := make([]string, 0, 2+len(p.RequiredSkills))
	fields = append(fields, p.Title, p.Company)
	for _, r := range p.RequiredSkills {
		fields = append(fields, r.Name)
	}
	return fields
}

func applyPostingScore(p *matching.JobPosting, s matching.PostingScore) {
	p.MatchScore = s.MatchScore
	p.MatchedSkills = s.Matched
	missing := make([]string, 0, len(s.Partial)+len(s.Missing))
	for _, a := range s.Assessments {
		if a.Status != matching.StatusMatched {
			missing = append(missing, a.Name)
		}
	}
	p.MissingSkills = missing
}
