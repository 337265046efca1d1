package matching

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(reqs []RequiredSkill) []string {
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Name)
	}
	return out
}

func levelOf(reqs []RequiredSkill, name string) int {
	for _, r := range reqs {
		if SkillKey(r.Name) == SkillKey(name) {
			return r.RequiredLevel
		}
	}
	return -1
}

func TestNewVocabularyRejectsDuplicates(t *testing.T) {
	_, err := NewVocabulary([]VocabularyEntry{
		{Skill: Skill{Name: "React"}, RequiredLevel: 80},
		{Skill: Skill{Name: "react"}, RequiredLevel: 60},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateSkill))

	_, err = NewVocabulary([]VocabularyEntry{{Skill: Skill{Name: " "}}})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestExtractEmptyText(t *testing.T) {
	e := NewKeywordExtractor(DefaultVocabulary(), nil)

	got := e.Extract("   \n\t ")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestExtractDirectHitsInVocabularyOrder(t *testing.T) {
	e := NewKeywordExtractor(DefaultVocabulary(), nil)

	got := e.Extract("PYTHON, react, TypeScript and Node.js with JavaScript")
	assert.Equal(t, []string{"React", "TypeScript", "JavaScript", "Node.js", "Python"}, names(got))
	assert.Equal(t, 85, levelOf(got, "React"))
	assert.Equal(t, 70, levelOf(got, "Python"))
}

func TestExtractSkipsMarkersWithEnoughDirectHits(t *testing.T) {
	e := NewKeywordExtractor(DefaultVocabulary(), nil)

	got := e.Extract("react typescript javascript node.js python frontend cloud")
	assert.Len(t, got, 5)
	assert.Equal(t, -1, levelOf(got, "CSS"))
	assert.Equal(t, -1, levelOf(got, "Docker"))
}

func TestExtractMarkerFallback(t *testing.T) {
	e := NewKeywordExtractor(DefaultVocabulary(), nil)

	got := e.Extract("We need a front-end wizard")
	assert.Equal(t, []string{"React", "TypeScript", "CSS"}, names(got))
	assert.Equal(t, 75, levelOf(got, "CSS"))
}

func TestExtractDirectHitWinsOverInjection(t *testing.T) {
	e := NewKeywordExtractor(DefaultVocabulary(), nil)

	got := e.Extract("CSS heavy frontend role")
	assert.Equal(t, 70, levelOf(got, "CSS"))
	assert.Equal(t, []string{"CSS", "React", "TypeScript"}, names(got))
}

func TestExtractMarkersDisabled(t *testing.T) {
	e := NewKeywordExtractor(DefaultVocabulary(), []MarkerRule{})

	assert.Empty(t, e.Extract("backend and devops"))
}

func TestExtractMultipleMarkersDedupe(t *testing.T) {
	e := NewKeywordExtractor(DefaultVocabulary(), nil)

	got := e.Extract("full stack engineer with cloud exposure")
	assert.Equal(t, []string{"React", "Node.js", "TypeScript", "AWS", "Docker", "CI/CD"}, names(got))
	assert.Equal(t, 70, levelOf(got, "AWS"))
}

func TestPostingRequirements(t *testing.T) {
	_, err := PostingRequirements(nil)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	got, err := PostingRequirements(&JobPosting{RequiredSkills: []RequiredSkill{
		{Name: "Go", RequiredLevel: 70},
		{Name: "go", RequiredLevel: 90},
		{Name: "SQL", RequiredLevel: 60},
	}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "SQL"}, names(got))
	assert.Equal(t, 70, levelOf(got, "Go"))
}
