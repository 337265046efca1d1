package matching

type Status string

const (
	StatusMatched Status = "matched"
	StatusPartial Status = "partial"
	StatusMissing Status = "missing"
)

// Partial credit starts at 3/5 of the required level.
const (
	partialNum = 3
	partialDen = 5
)

type SkillAssessment struct {
	Name            string
	UserProficiency int
	RequiredLevel   int
	Gap             int
	Status          Status
	Category        Category
}

func Classify(proficiency, required int) (Status, int) {
	gap := required - proficiency
	if gap < 0 {
		gap = 0
	}
	switch {
	case required <= 0 || proficiency >= required:
		return StatusMatched, gap
	case partialDen*proficiency >= partialNum*required:
		return StatusPartial, gap
	default:
		return StatusMissing, gap
	}
}

func Assess(req RequiredSkill, profile Profile) SkillAssessment {
	p := profile.Proficiency(req.Name)
	status, gap := Classify(p, req.RequiredLevel)
	return SkillAssessment{
		Name:            req.Name,
		UserProficiency: p,
		RequiredLevel:   req.RequiredLevel,
		Gap:             gap,
		Status:          status,
		Category:        req.Category,
	}
}

func AssessAll(reqs []RequiredSkill, profile Profile) []SkillAssessment {
	out := make([]SkillAssessment, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, Assess(r, profile))
	}
	return out
}

// Partition splits assessments by status, preserving input order.
func Partition(assessments []SkillAssessment) (matched, partial, missing []string) {
	matched, partial, missing = []string{}, []string{}, []string{}
	for _, a := range assessments {
		switch a.Status {
		case StatusMatched:
			matched = append(matched, a.Name)
		case StatusPartial:
			partial = append(partial, a.Name)
		default:
			missing = append(missing, a.Name)
		}
	}
	return matched, partial, missing
}
