package matching

// Aggregate returns the percentage of required skills covered, with partial
// skills counting half, rounded half-up.
func Aggregate(assessments []SkillAssessment) int {
	var m, p int
	for _, a := range assessments {
		switch a.Status {
		case StatusMatched:
			m++
		case StatusPartial:
			p++
		}
	}
	return scoreFromCounts(m, p, len(assessments))
}

// scoreTagged scores a posting whose matched skills were tagged upstream.
// Matched names outside the required list are ignored.
func scoreTagged(required, matched []string) int {
	req := make(map[string]struct{}, len(required))
	for _, r := range required {
		if k := SkillKey(r); k != "" {
			req[k] = struct{}{}
		}
	}
	hit := make(map[string]struct{}, len(matched))
	for _, m := range matched {
		k := SkillKey(m)
		if _, ok := req[k]; ok {
			hit[k] = struct{}{}
		}
	}
	return scoreFromCounts(len(hit), 0, len(req))
}

func scoreFromCounts(matched, partial, total int) int {
	if total <= 0 {
		return 0
	}
	score := (200*matched + 100*partial + total) / (2 * total)
	return clampInt(score, 0, 100)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
