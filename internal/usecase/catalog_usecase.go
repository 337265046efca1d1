package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"career-match/internal/domain/matching"
	"career-match/internal/repository"
)

type AddSkillInput struct {
	Name          string
	Category      string
	RequiredLevel int
}

type CatalogUsecase interface {
	Vocabulary(ctx context.Context) (*matching.Vocabulary, error)
	Courses(ctx context.Context) ([]matching.Resource, error)
	ListSkills(ctx context.Context) ([]repository.Skill, error)
	AddSkill(ctx context.Context, in AddSkillInput) (repository.Skill, error)
}

type Catalog struct {
	skills  repository.SkillRepository
	courses repository.CourseRepository
	cache   Cache
	logger  *log.Logger
}

func NewCatalogUsecase(skills repository.SkillRepository, courses repository.CourseRepository, cache Cache, logger *log.Logger) *Catalog {
	if logger == nil {
		logger = log.Default()
	}
	return &Catalog{skills: skills, courses: courses, cache: cacheOrNoop(cache), logger: logger}
}

func (u *Catalog) ListSkills(ctx context.Context) ([]repository.Skill, error) {
	var cached []repository.Skill
	if hit, err := u.cache.GetJSON(ctx, cacheKeyVocabulary, &cached); err == nil && hit {
		return cached, nil
	}

	items, err := u.skills.GetAllSkills(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load vocabulary: %w", ErrCatalogUnavailable, err)
	}
	if err := u.cache.SetJSON(ctx, cacheKeyVocabulary, items, 0); err != nil {
		u.logger.Printf("[Cache] set failed key=%s err=%v", cacheKeyVocabulary, err)
	}
	return items, nil
}

func (u *Catalog) Vocabulary(ctx context.Context) (*matching.Vocabulary, error) {
	items, err := u.ListSkills(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: vocabulary is empty", ErrCatalogUnavailable)
	}

	entries := make([]matching.VocabularyEntry, 0, len(items))
	for _, it := range items {
		category, ok := matching.ParseCategory(it.Category)
		if !ok {
			category = matching.CategoryTechnical
		}
		entries = append(entries, matching.VocabularyEntry{
			Skill:         matching.Skill{Name: it.Name, Category: category},
			RequiredLevel: it.RequiredLevel,
		})
	}
	vocab, err := matching.NewVocabulary(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	return vocab, nil
}

func (u *Catalog) Courses(ctx context.Context) ([]matching.Resource, error) {
	var cached []matching.Resource
	if hit, err := u.cache.GetJSON(ctx, cacheKeyCourses, &cached); err == nil && hit {
		return cached, nil
	}

	items, err := u.courses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load courses: %w", ErrCatalogUnavailable, err)
	}
	if err := u.cache.SetJSON(ctx, cacheKeyCourses, items, 0); err != nil {
		u.logger.Printf("[Cache] set failed key=%s err=%v", cacheKeyCourses, err)
	}
	return items, nil
}

func (u *Catalog) AddSkill(ctx context.Context, in AddSkillInput) (repository.Skill, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return repository.Skill{}, ErrInvalidInput
	}
	category, ok := matching.ParseCategory(in.Category)
	if !ok {
		return repository.Skill{}, ErrInvalidCategory
	}
	if !isValidLevel(in.RequiredLevel) {
		return repository.Skill{}, ErrInvalidRequiredLevel
	}

	created, err := u.skills.CreateSkill(ctx, repository.Skill{
		Name:          name,
		Category:      string(category),
		RequiredLevel: in.RequiredLevel,
	})
	if err != nil {
		if errors.Is(err, repository.ErrSkillAlreadyExists) {
			return repository.Skill{}, ErrSkillAlreadyExists
		}
		return repository.Skill{}, internal(err)
	}

	if err := u.cache.Delete(ctx, cacheKeyVocabulary); err != nil {
		u.logger.Printf("[Cache] delete failed key=%s err=%v", cacheKeyVocabulary, err)
	}
	// Cached analyses were extracted with the previous vocabulary.
	if err := u.cache.InvalidatePrefix(ctx, cachePrefixAnalyses); err != nil {
		u.logger.Printf("[Cache] invalidate failed prefix=%s err=%v", cachePrefixAnalyses, err)
	}
	u.logger.Printf("usecase=catalog status=skill_added name=%q category=%s level=%d", created.Name, created.Category, created.RequiredLevel)
	return created, nil
}

func isValidLevel(v int) bool {
	return v >= 0 && v <= 100
}
