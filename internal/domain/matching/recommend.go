package matching

import "github.com/google/uuid"

const DefaultResourceLimit = 4

type Resource struct {
	ID              uuid.UUID
	Title           string
	Provider        string
	DurationLabel   string
	LevelLabel      string
	AddressedSkills []string
	Rating          float64
	URL             string
}

// SelectResources returns catalog entries addressing at least one non-matched
// skill, in catalog order, truncated to limit.
func SelectResources(assessments []SkillAssessment, catalog []Resource, limit int) []Resource {
	out := []Resource{}
	if limit <= 0 || len(catalog) == 0 {
		return out
	}

	gaps := make(map[string]struct{})
	for _, a := range assessments {
		if a.Status == StatusMatched {
			continue
		}
		gaps[SkillKey(a.Name)] = struct{}{}
	}
	if len(gaps) == 0 {
		return out
	}

	for _, r := range catalog {
		if !addressesAny(r, gaps) {
			continue
		}
		out = append(out, cloneResource(r))
		if len(out) == limit {
			break
		}
	}
	return out
}

func addressesAny(r Resource, gaps map[string]struct{}) bool {
	for _, s := range r.AddressedSkills {
		if _, ok := gaps[SkillKey(s)]; ok {
			return true
		}
	}
	return false
}

func cloneResource(r Resource) Resource {
	r.AddressedSkills = append([]string(nil), r.AddressedSkills...)
	return r
}
