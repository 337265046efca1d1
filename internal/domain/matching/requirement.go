package matching

import "strings"

type RequiredSkill struct {
	Name          string
	RequiredLevel int
	Category      Category
}

// RequirementExtractor turns free text into the set of skills it demands.
type RequirementExtractor interface {
	Extract(text string) []RequiredSkill
}

type requirementSet struct {
	seen  map[string]struct{}
	items []RequiredSkill
}

func newRequirementSet(capacity int) *requirementSet {
	return &requirementSet{
		seen:  make(map[string]struct{}, capacity),
		items: make([]RequiredSkill, 0, capacity),
	}
}

// add keeps the first occurrence of a name.
func (s *requirementSet) add(r RequiredSkill) bool {
	key := SkillKey(r.Name)
	if key == "" {
		return false
	}
	if _, ok := s.seen[key]; ok {
		return false
	}
	s.seen[key] = struct{}{}
	r.Name = strings.TrimSpace(r.Name)
	r.RequiredLevel = clampLevel(r.RequiredLevel)
	s.items = append(s.items, r)
	return true
}
