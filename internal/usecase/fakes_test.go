package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"career-match/internal/domain/matching"
	"career-match/internal/domain/tracker"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

var errBoom = errors.New("boom")

type fakeSkillRepo struct {
	items   []repository.Skill
	err     error
	calls   int
	created []repository.Skill
}

func (f *fakeSkillRepo) GetAllSkills(context.Context) ([]repository.Skill, error) {
	f.calls++
	return f.items, f.err
}

func (f *fakeSkillRepo) CreateSkill(_ context.Context, s repository.Skill) (repository.Skill, error) {
	for _, it := range f.items {
		if strings.EqualFold(it.Name, s.Name) {
			return repository.Skill{}, repository.ErrSkillAlreadyExists
		}
	}
	s.ID = uuid.New()
	f.items = append(f.items, s)
	f.created = append(f.created, s)
	return s, nil
}

func defaultSkillRepo() *fakeSkillRepo {
	items := make([]repository.Skill, 0, len(matching.DefaultVocabularyEntries))
	for i, e := range matching.DefaultVocabularyEntries {
		items = append(items, repository.Skill{ID: uuid.New(), Name: e.Name, Category: string(e.Category), RequiredLevel: e.RequiredLevel, Position: i + 1})
	}
	return &fakeSkillRepo{items: items}
}

type fakeCourseRepo struct {
	items []matching.Resource
	err   error
}

func (f *fakeCourseRepo) List(context.Context) ([]matching.Resource, error) {
	return f.items, f.err
}

type fakeCandidateSkillRepo struct {
	items map[uuid.UUID][]repository.CandidateSkill
	err   error
	calls int
}

func newFakeCandidateSkillRepo() *fakeCandidateSkillRepo {
	return &fakeCandidateSkillRepo{items: map[uuid.UUID][]repository.CandidateSkill{}}
}

func (f *fakeCandidateSkillRepo) FindByCandidateID(_ context.Context, candidateID uuid.UUID) ([]repository.CandidateSkill, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]repository.CandidateSkill(nil), f.items[candidateID]...), nil
}

func (f *fakeCandidateSkillRepo) Create(_ context.Context, cs repository.CandidateSkill) (repository.CandidateSkill, error) {
	for _, e := range f.items[cs.CandidateID] {
		if strings.EqualFold(e.Name, cs.Name) {
			return repository.CandidateSkill{}, repository.ErrCandidateSkillExists
		}
	}
	f.items[cs.CandidateID] = append(f.items[cs.CandidateID], cs)
	return cs, nil
}

func (f *fakeCandidateSkillRepo) Update(_ context.Context, cs repository.CandidateSkill) (repository.CandidateSkill, error) {
	list := f.items[cs.CandidateID]
	for i, e := range list {
		if e.ID == cs.ID {
			e.Proficiency = cs.Proficiency
			e.YearsExperience = cs.YearsExperience
			if cs.Category != "" {
				e.Category = cs.Category
			}
			list[i] = e
			return e, nil
		}
	}
	return repository.CandidateSkill{}, repository.ErrCandidateSkillNotFound
}

func (f *fakeCandidateSkillRepo) Delete(_ context.Context, id uuid.UUID, candidateID uuid.UUID) error {
	for owner, list := range f.items {
		for i, e := range list {
			if e.ID != id {
				continue
			}
			if owner != candidateID {
				return repository.ErrCandidateSkillForbidden
			}
			f.items[owner] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return repository.ErrCandidateSkillNotFound
}

func (f *fakeCandidateSkillRepo) ReplaceAll(_ context.Context, candidateID uuid.UUID, skills []repository.CandidateSkill) ([]repository.CandidateSkill, error) {
	out := make([]repository.CandidateSkill, 0, len(skills))
	for _, s := range skills {
		s.ID = uuid.New()
		s.CandidateID = candidateID
		out = append(out, s)
	}
	f.items[candidateID] = out
	return out, nil
}

func (f *fakeCandidateSkillRepo) seed(candidateID uuid.UUID, skills ...matching.CandidateSkill) {
	for _, s := range skills {
		f.items[candidateID] = append(f.items[candidateID], repository.CandidateSkill{
			ID:          uuid.New(),
			CandidateID: candidateID,
			Name:        s.Name,
			Category:    string(s.Category),
			Proficiency: s.Proficiency,
		})
	}
}

type fakePostingRepo struct {
	items      []matching.JobPosting
	err        error
	created    []matching.JobPosting
	lastFilter repository.PostingFilter
}

func (f *fakePostingRepo) List(_ context.Context, filter repository.PostingFilter) ([]matching.JobPosting, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	out := make([]matching.JobPosting, 0, len(f.items))
	for _, p := range f.items {
		if filter.LocationType != "" && string(p.LocationType) != filter.LocationType {
			continue
		}
		out = append(out, p)
	}
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return []matching.JobPosting{}, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakePostingRepo) FindByID(_ context.Context, id uuid.UUID) (matching.JobPosting, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return matching.JobPosting{}, repository.ErrPostingNotFound
}

func (f *fakePostingRepo) Create(_ context.Context, p matching.JobPosting) (matching.JobPosting, error) {
	f.items = append(f.items, p)
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakePostingRepo) ListUntagged(_ context.Context, limit int) ([]matching.JobPosting, error) {
	out := []matching.JobPosting{}
	for _, p := range f.items {
		if len(p.RequiredSkills) == 0 {
			out = append(out, p)
		}
	}
	return out, f.err
}

func (f *fakePostingRepo) ReplaceSkills(_ context.Context, postingID uuid.UUID, skills []matching.RequiredSkill) error {
	for i, p := range f.items {
		if p.ID == postingID {
			f.items[i].RequiredSkills = skills
			return nil
		}
	}
	return repository.ErrPostingNotFound
}

type fakeBookmarkRepo struct {
	set map[uuid.UUID]struct{}
}

func (f *fakeBookmarkRepo) Toggle(_ context.Context, _ uuid.UUID, postingID uuid.UUID) (bool, error) {
	if f.set == nil {
		f.set = map[uuid.UUID]struct{}{}
	}
	if _, ok := f.set[postingID]; ok {
		delete(f.set, postingID)
		return false, nil
	}
	f.set[postingID] = struct{}{}
	return true, nil
}

func (f *fakeBookmarkRepo) ListPostingIDs(context.Context, uuid.UUID) (map[uuid.UUID]struct{}, error) {
	out := map[uuid.UUID]struct{}{}
	for k := range f.set {
		out[k] = struct{}{}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	items []tracker.Application
}

func (f *fakeApplicationRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID) ([]tracker.Application, error) {
	out := []tracker.Application{}
	for _, a := range f.items {
		if a.CandidateID == candidateID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) Create(_ context.Context, a tracker.Application) (tracker.Application, error) {
	a.ID = uuid.New()
	a.AppliedAt = time.Now().UTC()
	f.items = append(f.items, a)
	return a, nil
}

func (f *fakeApplicationRepo) Update(_ context.Context, a tracker.Application) (tracker.Application, error) {
	for i, e := range f.items {
		if e.ID == a.ID && e.CandidateID == a.CandidateID {
			e.Status = a.Status
			e.Interview = a.Interview
			f.items[i] = e
			return e, nil
		}
	}
	return tracker.Application{}, repository.ErrApplicationNotFound
}

type fakeAnalysisRepo struct {
	saved []repository.AnalysisRecord
}

func (f *fakeAnalysisRepo) Save(_ context.Context, rec repository.AnalysisRecord) (bool, error) {
	for _, s := range f.saved {
		if rec.RequestID != "" && s.RequestID == rec.RequestID {
			return false, nil
		}
	}
	f.saved = append(f.saved, rec)
	return true, nil
}

func (f *fakeAnalysisRepo) ListByCandidate(_ context.Context, candidateID uuid.UUID, _ int) ([]repository.AnalysisRecord, error) {
	out := []repository.AnalysisRecord{}
	for _, s := range f.saved {
		if s.CandidateID == candidateID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	invalidated []string
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (m *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = b
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func (m *memCache) InvalidatePrefix(_ context.Context, prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invalidated = append(m.invalidated, prefix)
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			delete(m.data, k)
		}
	}
	return nil
}

type fakeNotifier struct {
	ids []uuid.UUID
}

func (f *fakeNotifier) NotifyProfileUpdated(id uuid.UUID) {
	f.ids = append(f.ids, id)
}

type fakeFetcher struct {
	text string
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (string, error) {
	f.urls = append(f.urls, url)
	return f.text, f.err
}

func demoSkills() []matching.CandidateSkill {
	return []matching.CandidateSkill{
		{Name: "React", Proficiency: 85, Category: matching.CategoryTechnical},
		{Name: "TypeScript", Proficiency: 80, Category: matching.CategoryTechnical},
		{Name: "JavaScript", Proficiency: 90, Category: matching.CategoryTechnical},
		{Name: "Node.js", Proficiency: 70, Category: matching.CategoryTechnical},
		{Name: "AWS", Proficiency: 45, Category: matching.CategoryTool},
		{Name: "Git", Proficiency: 85, Category: matching.CategoryTool},
		{Name: "CI/CD", Proficiency: 55, Category: matching.CategoryTool},
		{Name: "CSS", Proficiency: 85, Category: matching.CategoryTechnical},
	}
}
