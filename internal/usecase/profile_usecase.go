package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"career-match/internal/domain/matching"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

type ProfileSkillInput struct {
	Name            string
	Category        string
	Proficiency     int
	YearsExperience int
}

type ProfileSkillItem struct {
	ID              uuid.UUID
	Name            string
	Category        matching.Category
	Proficiency     int
	YearsExperience int
}

// ProfileNotifier is told when a candidate's skills change so live sessions
// can re-run their analysis.
type ProfileNotifier interface {
	NotifyProfileUpdated(candidateID uuid.UUID)
}

type ProfileUsecase interface {
	ListSkills(ctx context.Context, candidateID uuid.UUID) ([]ProfileSkillItem, error)
	AddSkill(ctx context.Context, candidateID uuid.UUID, in ProfileSkillInput) (ProfileSkillItem, error)
	UpdateSkill(ctx context.Context, candidateID uuid.UUID, skillID uuid.UUID, in ProfileSkillInput) (ProfileSkillItem, error)
	DeleteSkill(ctx context.Context, candidateID uuid.UUID, skillID uuid.UUID) error
	ReplaceSkills(ctx context.Context, candidateID uuid.UUID, in []ProfileSkillInput) ([]ProfileSkillItem, error)
	Profile(ctx context.Context, candidateID uuid.UUID) (matching.Profile, error)
}

type Profile struct {
	repo     repository.CandidateSkillRepository
	cache    Cache
	notifier ProfileNotifier
	logger   *log.Logger
}

func NewProfileUsecase(repo repository.CandidateSkillRepository, cache Cache, notifier ProfileNotifier, logger *log.Logger) *Profile {
	if logger == nil {
		logger = log.Default()
	}
	return &Profile{repo: repo, cache: cacheOrNoop(cache), notifier: notifier, logger: logger}
}

func (u *Profile) ListSkills(ctx context.Context, candidateID uuid.UUID) ([]ProfileSkillItem, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.repo.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return nil, internal(err)
	}
	out := make([]ProfileSkillItem, 0, len(items))
	for _, it := range items {
		out = append(out, toProfileSkillItem(it))
	}
	return out, nil
}

func (u *Profile) Profile(ctx context.Context, candidateID uuid.UUID) (matching.Profile, error) {
	items, err := u.ListSkills(ctx, candidateID)
	if err != nil {
		return matching.Profile{}, err
	}
	skills := make([]matching.CandidateSkill, 0, len(items))
	for _, it := range items {
		skills = append(skills, matching.CandidateSkill{Name: it.Name, Proficiency: it.Proficiency, Category: it.Category})
	}
	return matching.NewProfile(skills), nil
}

func (u *Profile) AddSkill(ctx context.Context, candidateID uuid.UUID, in ProfileSkillInput) (ProfileSkillItem, error) {
	if candidateID == uuid.Nil {
		return ProfileSkillItem{}, ErrUnauthorized
	}
	cs, err := validateProfileSkill(in)
	if err != nil {
		return ProfileSkillItem{}, err
	}

	existing, err := u.repo.FindByCandidateID(ctx, candidateID)
	if err != nil {
		return ProfileSkillItem{}, internal(err)
	}
	for _, e := range existing {
		if matching.SkillKey(e.Name) == matching.SkillKey(cs.Name) {
			return ProfileSkillItem{}, ErrSkillAlreadyExists
		}
	}

	cs.ID = uuid.New()
	cs.CandidateID = candidateID
	created, err := u.repo.Create(ctx, cs)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateSkillExists) {
			return ProfileSkillItem{}, ErrSkillAlreadyExists
		}
		return ProfileSkillItem{}, internal(err)
	}

	u.profileChanged(ctx, candidateID)
	return toProfileSkillItem(created), nil
}

func (u *Profile) UpdateSkill(ctx context.Context, candidateID uuid.UUID, skillID uuid.UUID, in ProfileSkillInput) (ProfileSkillItem, error) {
	if candidateID == uuid.Nil {
		return ProfileSkillItem{}, ErrUnauthorized
	}
	if skillID == uuid.Nil {
		return ProfileSkillItem{}, ErrInvalidInput
	}
	if !isValidLevel(in.Proficiency) {
		return ProfileSkillItem{}, ErrInvalidProficiencyLevel
	}
	if in.YearsExperience < 0 {
		return ProfileSkillItem{}, ErrInvalidInput
	}
	category := ""
	if strings.TrimSpace(in.Category) != "" {
		c, ok := matching.ParseCategory(in.Category)
		if !ok {
			return ProfileSkillItem{}, ErrInvalidCategory
		}
		category = string(c)
	}

	updated, err := u.repo.Update(ctx, repository.CandidateSkill{
		ID:              skillID,
		CandidateID:     candidateID,
		Category:        category,
		Proficiency:     in.Proficiency,
		YearsExperience: in.YearsExperience,
	})
	if err != nil {
		if errors.Is(err, repository.ErrCandidateSkillNotFound) {
			return ProfileSkillItem{}, ErrSkillNotFound
		}
		return ProfileSkillItem{}, internal(err)
	}

	u.profileChanged(ctx, candidateID)
	return toProfileSkillItem(updated), nil
}

func (u *Profile) DeleteSkill(ctx context.Context, candidateID uuid.UUID, skillID uuid.UUID) error {
	if candidateID == uuid.Nil {
		return ErrUnauthorized
	}
	if skillID == uuid.Nil {
		return ErrInvalidInput
	}
	if err := u.repo.Delete(ctx, skillID, candidateID); err != nil {
		switch {
		case errors.Is(err, repository.ErrCandidateSkillNotFound):
			return ErrSkillNotFound
		case errors.Is(err, repository.ErrCandidateSkillForbidden):
			return ErrForbidden
		default:
			return internal(err)
		}
	}

	u.profileChanged(ctx, candidateID)
	return nil
}

// ReplaceSkills saves the whole profile at once. Duplicate names in the input
// are rejected before anything is written.
func (u *Profile) ReplaceSkills(ctx context.Context, candidateID uuid.UUID, in []ProfileSkillInput) ([]ProfileSkillItem, error) {
	if candidateID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	seen := make(map[string]struct{}, len(in))
	skills := make([]repository.CandidateSkill, 0, len(in))
	for _, it := range in {
		cs, err := validateProfileSkill(it)
		if err != nil {
			return nil, err
		}
		key := matching.SkillKey(cs.Name)
		if _, dup := seen[key]; dup {
			return nil, ErrSkillAlreadyExists
		}
		seen[key] = struct{}{}
		skills = append(skills, cs)
	}

	saved, err := u.repo.ReplaceAll(ctx, candidateID, skills)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateSkillExists) {
			return nil, ErrSkillAlreadyExists
		}
		return nil, internal(err)
	}

	u.profileChanged(ctx, candidateID)
	out := make([]ProfileSkillItem, 0, len(saved))
	for _, s := range saved {
		out = append(out, toProfileSkillItem(s))
	}
	return out, nil
}

func (u *Profile) profileChanged(ctx context.Context, candidateID uuid.UUID) {
	if err := u.cache.InvalidatePrefix(ctx, AnalysisCachePrefix(candidateID)); err != nil {
		u.logger.Printf("[Cache] invalidate failed candidate_id=%s err=%v", candidateID, err)
	}
	if u.notifier != nil {
		u.notifier.NotifyProfileUpdated(candidateID)
	}
}

func validateProfileSkill(in ProfileSkillInput) (repository.CandidateSkill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return repository.CandidateSkill{}, ErrInvalidInput
	}
	if !isValidLevel(in.Proficiency) {
		return repository.CandidateSkill{}, ErrInvalidProficiencyLevel
	}
	if in.YearsExperience < 0 {
		return repository.CandidateSkill{}, ErrInvalidInput
	}
	category := matching.CategoryTechnical
	if strings.TrimSpace(in.Category) != "" {
		c, ok := matching.ParseCategory(in.Category)
		if !ok {
			return repository.CandidateSkill{}, ErrInvalidCategory
		}
		category = c
	}
	return repository.CandidateSkill{
		Name:            name,
		Category:        string(category),
		Proficiency:     in.Proficiency,
		YearsExperience: in.YearsExperience,
	}, nil
}

func toProfileSkillItem(cs repository.CandidateSkill) ProfileSkillItem {
	category, ok := matching.ParseCategory(cs.Category)
	if !ok {
		category = matching.CategoryTechnical
	}
	return ProfileSkillItem{
		ID:              cs.ID,
		Name:            cs.Name,
		Category:        category,
		Proficiency:     cs.Proficiency,
		YearsExperience: cs.YearsExperience,
	}
}
