package matching

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestParseJobInfo(t *testing.T) {
	text := "Senior Backend Engineer\nAcme Corp\n\nLocation: Berlin, Germany\nWe build things."
	info := ParseJobInfo(text)

	assert.Equal(t, "Senior Backend Engineer", info.Title)
	assert.Equal(t, "Berlin, Germany", info.Location)
	assert.Equal(t, DefaultJobCompany, info.Company)
}

func TestParseJobInfoLocationLine(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"prefix kept", "Office LOCATION: Austin, TX", "Office Austin, TX"},
		{"empty marker", "Title\nLocation:", ""},
		{"first marker only", "location: Paris location: Lyon", "Paris location: Lyon"},
		{"last line wins", "Location: Oslo\nLocation: Bergen", "Bergen"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseJobInfo(tc.text).Location)
		})
	}
}

func TestParseJobInfoOnlyScansHead(t *testing.T) {
	text := "one\ntwo\nthree\nfour\nfive\nPlatform Engineer\nlocation: Remote-EU"
	assert.Equal(t, JobInfo{Title: DefaultJobTitle, Company: DefaultJobCompany, Location: DefaultJobLocation}, ParseJobInfo(text))
}

func TestParseJobInfoTruncatesTitle(t *testing.T) {
	line := "Developer " + strings.Repeat("x", 80)
	info := ParseJobInfo(line)

	assert.Equal(t, 50, utf8.RuneCountInString(info.Title))
	assert.True(t, strings.HasPrefix(info.Title, "Developer"))
}

func TestSummaryAndLabel(t *testing.T) {
	assert.True(t, strings.HasPrefix(Summary(70), "Great match!"))
	assert.True(t, strings.HasPrefix(Summary(69), "Good potential!"))
	assert.True(t, strings.HasPrefix(Summary(50), "Good potential!"))
	assert.True(t, strings.HasPrefix(Summary(49), "There are significant skill gaps."))

	assert.Equal(t, "Excellent", ScoreLabel(80))
	assert.Equal(t, "Good", ScoreLabel(60))
	assert.Equal(t, "Needs Improvement", ScoreLabel(40))
	assert.Equal(t, "Poor", ScoreLabel(39))
}

func TestSuggestions(t *testing.T) {
	got := Suggestions([]SkillAssessment{
		{Name: "AWS", Status: StatusMissing, Category: CategoryTool},
		{Name: "GraphQL", Status: StatusMissing, Category: CategoryTechnical},
		{Name: "Node.js", Status: StatusPartial, Category: CategoryTechnical},
		{Name: "SQL", Status: StatusMissing, Category: CategoryTechnical},
		{Name: "Python", Status: StatusMissing, Category: CategoryTechnical},
		{Name: "Agile", Status: StatusPartial, Category: CategorySoft},
	})

	assert.Equal(t, []string{
		"Consider learning GraphQL and SQL to match the technical requirements.",
		"Strengthen your Node.js skills to reach the required proficiency level.",
		"Highlight your strongest matching skills prominently in your resume summary.",
		"Include quantifiable achievements that demonstrate your expertise in matched skills.",
	}, got)
}

func TestSuggestionsWithoutGaps(t *testing.T) {
	got := Suggestions([]SkillAssessment{{Name: "Go", Status: StatusMatched}})
	assert.Len(t, got, 2)
}
