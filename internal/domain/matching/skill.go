package matching

import (
	"fmt"
	"strings"
)

type Category string

const (
	CategoryTechnical Category = "technical"
	CategorySoft      Category = "soft"
	CategoryTool      Category = "tool"
)

// ParseCategory accepts the canonical names plus the plural "tools" used by
// older payloads.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "technical":
		return CategoryTechnical, true
	case "soft":
		return CategorySoft, true
	case "tool", "tools":
		return CategoryTool, true
	default:
		return "", false
	}
}

type Skill struct {
	Name     string
	Category Category
}

// SkillKey is the case-insensitive identity of a skill name.
func SkillKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

type VocabularyEntry struct {
	Skill
	RequiredLevel int
}

// Vocabulary is the ordered list of recognized skills. Order matters: the
// extractor reports direct hits in vocabulary order.
type Vocabulary struct {
	entries []VocabularyEntry
	index   map[string]int
}

func NewVocabulary(entries []VocabularyEntry) (*Vocabulary, error) {
	v := &Vocabulary{
		entries: make([]VocabularyEntry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		key := SkillKey(e.Name)
		if key == "" {
			return nil, fmt.Errorf("%w: empty skill name", ErrInvalidInput)
		}
		if _, ok := v.index[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSkill, e.Name)
		}
		e.Name = strings.TrimSpace(e.Name)
		e.RequiredLevel = clampLevel(e.RequiredLevel)
		v.index[key] = len(v.entries)
		v.entries = append(v.entries, e)
	}
	return v, nil
}

func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}

func (v *Vocabulary) Entries() []VocabularyEntry {
	if v == nil {
		return nil
	}
	out := make([]VocabularyEntry, len(v.entries))
	copy(out, v.entries)
	return out
}

func (v *Vocabulary) Lookup(name string) (VocabularyEntry, bool) {
	if v == nil {
		return VocabularyEntry{}, false
	}
	i, ok := v.index[SkillKey(name)]
	if !ok {
		return VocabularyEntry{}, false
	}
	return v.entries[i], true
}

type CandidateSkill struct {
	Name        string
	Proficiency int
	Category    Category
}

// Profile is a read-only, case-insensitive view over a candidate's skills.
// A skill that is absent has proficiency 0.
type Profile struct {
	order  []string
	skills map[string]CandidateSkill
}

// NewProfile indexes skills by name. Later entries replace earlier ones with
// the same name.
func NewProfile(skills []CandidateSkill) Profile {
	p := Profile{
		order:  make([]string, 0, len(skills)),
		skills: make(map[string]CandidateSkill, len(skills)),
	}
	for _, s := range skills {
		key := SkillKey(s.Name)
		if key == "" {
			continue
		}
		s.Name = strings.TrimSpace(s.Name)
		s.Proficiency = clampLevel(s.Proficiency)
		if _, ok := p.skills[key]; !ok {
			p.order = append(p.order, key)
		}
		p.skills[key] = s
	}
	return p
}

func (p Profile) Proficiency(name string) int {
	s, ok := p.skills[SkillKey(name)]
	if !ok {
		return 0
	}
	return s.Proficiency
}

func (p Profile) Has(name string) bool {
	_, ok := p.skills[SkillKey(name)]
	return ok
}

func (p Profile) Len() int {
	return len(p.order)
}

func (p Profile) Skills() []CandidateSkill {
	out := make([]CandidateSkill, 0, len(p.order))
	for _, k := range p.order {
		out = append(out, p.skills[k])
	}
	return out
}

func clampLevel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
