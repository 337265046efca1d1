package matching

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScorePosting(t *testing.T) {
	posting := &JobPosting{RequiredSkills: []RequiredSkill{
		{Name: "A", RequiredLevel: 50},
		{Name: "B", RequiredLevel: 50},
		{Name: "C", RequiredLevel: 50},
	}}
	profile := NewProfile([]CandidateSkill{{Name: "a", Proficiency: 60}, {Name: "B", Proficiency: 50}})

	got, err := ScorePosting(posting, profile)
	require.NoError(t, err)
	assert.Equal(t, 67, got.MatchScore)
	assert.Equal(t, []string{"A", "B"}, got.Matched)
	assert.Equal(t, []string{"C"}, got.Missing)
	assert.Empty(t, got.Partial)
}

func TestScorePostingAgreesWithTagged(t *testing.T) {
	posting := &JobPosting{
		RequiredSkills: []RequiredSkill{{Name: "A", RequiredLevel: 70}, {Name: "B", RequiredLevel: 70}, {Name: "C", RequiredLevel: 70}},
		MatchedSkills:  []string{"A", "B"},
		MissingSkills:  []string{"C"},
	}
	profile := NewProfile([]CandidateSkill{{Name: "A", Proficiency: 70}, {Name: "B", Proficiency: 90}})

	scored, err := ScorePosting(posting, profile)
	require.NoError(t, err)
	tagged, err := scoreTaggedPosting(posting)
	require.NoError(t, err)
	assert.Equal(t, 67, tagged)
	assert.Equal(t, tagged, scored.MatchScore)
}

func TestScorePostingNil(t *testing.T) {
	_, err := ScorePosting(nil, Profile{})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = scoreTaggedPosting(nil)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestScorePostingWithoutRequirements(t *testing.T) {
	got, err := ScorePosting(&JobPosting{}, Profile{})
	require.NoError(t, err)
	assert.Zero(t, got.MatchScore)
}

func TestParseLocationType(t *testing.T) {
	lt, ok := ParseLocationType("On-Site")
	require.True(t, ok)
	assert.Equal(t, LocationOnsite, lt)

	_, ok = ParseLocationType("moon")
	assert.False(t, ok)
}
