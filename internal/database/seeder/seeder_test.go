package seeder

import (
	"context"
	"testing"

	"career-match/internal/domain/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsOrder(t *testing.T) {
	names := make([]string, 0)
	for _, s := range Defaults() {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"skills", "courses", "postings", "demo_candidate"}, names)
}

func TestRunnerRejectsNilDB(t *testing.T) {
	err := Runner{Seeders: Defaults()}.Run(context.Background(), nil)
	require.Error(t, err)
}

func TestPostingIDStable(t *testing.T) {
	a := PostingID("React Developer", "FinTech Solutions")
	b := PostingID("React Developer", "FinTech Solutions")
	c := PostingID("React Developer", "TechVista Solutions")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestDefaultPostingsAreValid(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range defaultPostings {
		_, ok := matching.ParseLocationType(string(p.LocationType))
		assert.True(t, ok, p.Title)
		assert.NotEmpty(t, p.Skills, p.Title)
		id := PostingID(p.Title, p.Company).String()
		assert.False(t, seen[id], "duplicate posting %s", p.Title)
		seen[id] = true
	}
	assert.Len(t, defaultPostings, 6)
}

func TestDemoProfileScoresSeededPostings(t *testing.T) {
	profile := matching.NewProfile(demoSkills)
	vocab := matching.DefaultVocabulary()

	for _, p := range defaultPostings {
		if p.Title != "Senior Frontend Developer" {
			continue
		}
		req := make([]matching.RequiredSkill, 0, len(p.Skills))
		for _, name := range p.Skills {
			e, ok := vocab.Lookup(name)
			require.True(t, ok, name)
			req = append(req, matching.RequiredSkill{Name: e.Name, RequiredLevel: e.RequiredLevel, Category: e.Category})
		}
		score, err := matching.ScorePosting(&matching.JobPosting{Title: p.Title, RequiredSkills: req}, profile)
		require.NoError(t, err)
		assert.Empty(t, score.Missing)
	}
}
