package matching

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titlesOf(ps []JobPosting) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}

func TestSortByMatchIsStable(t *testing.T) {
	in := []JobPosting{
		{Title: "a", MatchScore: 50},
		{Title: "b", MatchScore: 90},
		{Title: "c", MatchScore: 50},
		{Title: "d", MatchScore: 70},
	}

	got := SortPostings(in, SortByMatch)
	assert.Equal(t, []string{"b", "d", "a", "c"}, titlesOf(got))
	assert.Equal(t, []string{"a", "b", "c", "d"}, titlesOf(in))
}

func TestSortByDate(t *testing.T) {
	in := []JobPosting{
		{Title: "week", PostedLabel: "1 week ago"},
		{Title: "day", PostedLabel: "1 day ago"},
		{Title: "unknown", PostedLabel: "whenever"},
		{Title: "two days", PostedLabel: "2 days ago"},
		{Title: "today", PostedLabel: "Today"},
		{Title: "unknown 2", PostedLabel: ""},
	}

	got := SortPostings(in, SortByDate)
	assert.Equal(t, []string{"today", "day", "two days", "week", "unknown", "unknown 2"}, titlesOf(got))
}

func TestSortByDatePrefersTimestamp(t *testing.T) {
	threeHoursAgo := time.Now().Add(-3 * time.Hour)
	in := []JobPosting{
		{Title: "label", PostedLabel: "1 day ago"},
		{Title: "stamp", PostedLabel: "5 weeks ago", PostedAt: &threeHoursAgo},
	}

	assert.Equal(t, []string{"stamp", "label"}, titlesOf(SortPostings(in, SortByDate)))
}

func TestSortByDateLabelLexicographic(t *testing.T) {
	in := []JobPosting{
		{Title: "two days", PostedLabel: "2 days ago"},
		{Title: "week", PostedLabel: "1 week ago"},
		{Title: "day", PostedLabel: "1 day ago"},
	}

	assert.Equal(t, []string{"day", "week", "two days"}, titlesOf(SortPostings(in, SortByDateLabel)))
}

func TestSortBySalary(t *testing.T) {
	in := []JobPosting{
		{Title: "mid", Salary: "₹25-35 LPA"},
		{Title: "low", Salary: "₹12-18 LPA"},
		{Title: "none", Salary: "Negotiable"},
		{Title: "top", Salary: "₹35-50 LPA"},
		{Title: "upper", Salary: "₹28-40 LPA"},
		{Title: "same top lower floor", Salary: "₹30-50 LPA"},
	}

	got := SortPostings(in, SortBySalary)
	assert.Equal(t, []string{"top", "same top lower floor", "upper", "mid", "low", "none"}, titlesOf(got))
}

func TestSortBySalaryDigits(t *testing.T) {
	in := []JobPosting{
		{Title: "mid", Salary: "₹25-35 LPA"},
		{Title: "none", Salary: "TBD"},
		{Title: "low", Salary: "₹12-18 LPA"},
		{Title: "top", Salary: "₹35-50 LPA"},
	}

	assert.Equal(t, []string{"top", "mid", "low", "none"}, titlesOf(SortPostings(in, SortBySalaryDigits)))
}

func TestSortUnknownKeyKeepsOrder(t *testing.T) {
	in := []JobPosting{{Title: "b", MatchScore: 1}, {Title: "a", MatchScore: 2}}
	assert.Equal(t, []string{"b", "a"}, titlesOf(SortPostings(in, SortKey("nope"))))
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByMatch, k)

	k, err = ParseSortKey(" Salary ")
	require.NoError(t, err)
	assert.Equal(t, SortBySalary, k)

	_, err = ParseSortKey("bogus")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestParsePostedLabel(t *testing.T) {
	cases := map[string]time.Duration{
		"just now":     0,
		"yesterday":    24 * time.Hour,
		"3 hours ago":  3 * time.Hour,
		"a week ago":   7 * 24 * time.Hour,
		"2 months ago": 60 * 24 * time.Hour,
	}
	for label, want := range cases {
		got, ok := ParsePostedLabel(label)
		require.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}

	_, ok := ParsePostedLabel("last spring")
	assert.False(t, ok)
}

func TestSalaryRange(t *testing.T) {
	lo, hi, ok := SalaryRange("$120,000 - $150,000")
	require.True(t, ok)
	assert.Equal(t, 120000.0, lo)
	assert.Equal(t, 150000.0, hi)

	_, _, ok = SalaryRange("competitive")
	assert.False(t, ok)
}
