package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func titles(rs []Resource) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Title)
	}
	return out
}

func TestSelectResourcesCatalogOrder(t *testing.T) {
	gaps := []SkillAssessment{
		{Name: "system design", Status: StatusMissing},
		{Name: "Python", Status: StatusPartial},
		{Name: "React", Status: StatusMatched},
	}

	got := SelectResources(gaps, DefaultCourses, 4)
	assert.Equal(t, []string{"Python for Data Science", "System Design Interview Prep"}, titles(got))
}

func TestSelectResourcesLimit(t *testing.T) {
	gaps := []SkillAssessment{
		{Name: "AWS", Status: StatusMissing},
		{Name: "Docker", Status: StatusMissing},
		{Name: "Python", Status: StatusMissing},
		{Name: "TypeScript", Status: StatusMissing},
		{Name: "GraphQL", Status: StatusMissing},
		{Name: "System Design", Status: StatusMissing},
	}

	assert.Len(t, SelectResources(gaps, DefaultCourses, 4), 4)
	assert.Equal(t, []string{"AWS Certified Solutions Architect", "Docker & Kubernetes Masterclass"}, titles(SelectResources(gaps, DefaultCourses, 2)))
	assert.Empty(t, SelectResources(gaps, DefaultCourses, 0))
}

func TestSelectResourcesNoGaps(t *testing.T) {
	got := SelectResources([]SkillAssessment{{Name: "AWS", Status: StatusMatched}}, DefaultCourses, 4)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, SelectResources([]SkillAssessment{{Name: "Rust", Status: StatusMissing}}, DefaultCourses, 4))
}

func TestSelectResourcesDoesNotAliasCatalog(t *testing.T) {
	catalog := []Resource{{Title: "Go", AddressedSkills: []string{"Go"}}}
	got := SelectResources([]SkillAssessment{{Name: "Go", Status: StatusMissing}}, catalog, 1)

	got[0].AddressedSkills[0] = "changed"
	assert.Equal(t, "Go", catalog[0].AddressedSkills[0])
}
