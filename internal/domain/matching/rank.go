package matching

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

type SortKey string

const (
	SortByMatch        SortKey = "match"
	SortByDate         SortKey = "date"
	SortBySalary       SortKey = "salary"
	SortByDateLabel    SortKey = "date_label"
	SortBySalaryDigits SortKey = "salary_digits"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortByMatch, nil
	case SortByMatch, SortByDate, SortBySalary, SortByDateLabel, SortBySalaryDigits:
		return k, nil
	default:
		return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, s)
	}
}

// SortPostings returns a stably sorted copy of postings. Unknown keys keep the
// input order.
func SortPostings(postings []JobPosting, key SortKey) []JobPosting {
	out := make([]JobPosting, len(postings))
	copy(out, postings)

	switch key {
	case SortByMatch:
		sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	case SortByDate:
		now := time.Now()
		ages := make([]time.Duration, len(out))
		known := make([]bool, len(out))
		for i := range out {
			ages[i], known[i] = postingAge(out[i], now)
		}
		idx := indexSlice(len(out))
		sort.SliceStable(idx, func(a, b int) bool {
			i, j := idx[a], idx[b]
			if known[i] != known[j] {
				return known[i]
			}
			return known[i] && ages[i] < ages[j]
		})
		out = permute(out, idx)
	case SortBySalary:
		lo := make([]float64, len(out))
		hi := make([]float64, len(out))
		known := make([]bool, len(out))
		for i := range out {
			lo[i], hi[i], known[i] = SalaryRange(out[i].Salary)
		}
		idx := indexSlice(len(out))
		sort.SliceStable(idx, func(a, b int) bool {
			i, j := idx[a], idx[b]
			if known[i] != known[j] {
				return known[i]
			}
			if !known[i] {
				return false
			}
			if hi[i] != hi[j] {
				return hi[i] > hi[j]
			}
			return lo[i] > lo[j]
		})
		out = permute(out, idx)
	case SortByDateLabel:
		sort.SliceStable(out, func(i, j int) bool { return out[i].PostedLabel < out[j].PostedLabel })
	case SortBySalaryDigits:
		sort.SliceStable(out, func(i, j int) bool { return SalaryDigits(out[i].Salary) > SalaryDigits(out[j].Salary) })
	}
	return out
}

func indexSlice(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func permute(in []JobPosting, idx []int) []JobPosting {
	out := make([]JobPosting, len(in))
	for k, i := range idx {
		out[k] = in[i]
	}
	return out
}

func postingAge(p JobPosting, now time.Time) (time.Duration, bool) {
	if p.PostedAt != nil {
		age := now.Sub(*p.PostedAt)
		if age < 0 {
			age = 0
		}
		return age, true
	}
	return ParsePostedLabel(p.PostedLabel)
}

var postedLabelRe = regexp.MustCompile(`^(\d+|an?|one)\s+(minute|hour|day|week|month|year)s?\s+ago$`)

var labelUnits = map[string]time.Duration{
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
	"month":  30 * 24 * time.Hour,
	"year":   365 * 24 * time.Hour,
}

// ParsePostedLabel converts labels such as "2 days ago" into an age.
func ParsePostedLabel(label string) (time.Duration, bool) {
	l := strings.ToLower(strings.TrimSpace(label))
	switch l {
	case "":
		return 0, false
	case "just now", "today":
		return 0, true
	case "yesterday":
		return 24 * time.Hour, true
	}

	m := postedLabelRe.FindStringSubmatch(l)
	if m == nil {
		return 0, false
	}
	n := 1
	if v, err := strconv.Atoi(m[1]); err == nil {
		n = v
	}
	return time.Duration(n) * labelUnits[m[2]], true
}

var numberRe = regexp.MustCompile(`\d+(?:\.\d+)?`)

// SalaryRange returns the smallest and largest number mentioned in s.
func SalaryRange(s string) (lo, hi float64, ok bool) {
	nums := numberRe.FindAllString(strings.ReplaceAll(s, ",", ""), -1)
	if len(nums) == 0 {
		return 0, 0, false
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, n := range nums {
		v, err := strconv.ParseFloat(n, 64)
		if err != nil {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if math.IsInf(lo, 1) {
		return 0, 0, false
	}
	return lo, hi, true
}

// SalaryDigits concatenates every digit in s and parses the result; strings
// without digits yield -1.
func SalaryDigits(s string) int64 {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return -1
	}
	v, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return math.MaxInt64
	}
	return v
}
