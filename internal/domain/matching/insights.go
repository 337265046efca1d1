package matching

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	DefaultJobTitle    = "Software Engineer"
	DefaultJobCompany  = "Company"
	DefaultJobLocation = "Remote"

	jobInfoScanLines = 5
	jobTitleMaxRunes = 50
)

type JobInfo struct {
	Title    string
	Company  string
	Location string
}

// ParseJobInfo sniffs a title and location from the head of a job description.
func ParseJobInfo(text string) JobInfo {
	info := JobInfo{Title: DefaultJobTitle, Company: DefaultJobCompany, Location: DefaultJobLocation}

	scanned := 0
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		scanned++
		if scanned > jobInfoScanLines {
			break
		}

		lower := strings.ToLower(line)
		if strings.Contains(lower, "engineer") || strings.Contains(lower, "developer") {
			info.Title = truncateRunes(line, jobTitleMaxRunes)
		}
		if loc := locationMarker.FindStringIndex(line); loc != nil {
			info.Location = strings.TrimSpace(line[:loc[0]] + line[loc[1]:])
		}
	}
	return info
}

// locationMarker is removed once from the line; text on either side is kept.
var locationMarker = regexp.MustCompile(`(?i)location:`)

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:max]))
}

func Summary(score int) string {
	switch {
	case score >= 70:
		return "Great match! Your skills align well with this position."
	case score >= 50:
		return "Good potential! Some skill gaps can be addressed with targeted learning."
	default:
		return "There are significant skill gaps. Consider the recommended courses below."
	}
}

func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Needs Improvement"
	default:
		return "Poor"
	}
}

// Suggestions returns resume and learning advice derived from assessments.
func Suggestions(assessments []SkillAssessment) []string {
	out := make([]string, 0, 4)

	missingTech := make([]string, 0, 2)
	for _, a := range assessments {
		if a.Status == StatusMissing && a.Category == CategoryTechnical {
			missingTech = append(missingTech, a.Name)
			if len(missingTech) == 2 {
				break
			}
		}
	}
	if len(missingTech) > 0 {
		out = append(out, fmt.Sprintf("Consider learning %s to match the technical requirements.", strings.Join(missingTech, " and ")))
	}

	for _, a := range assessments {
		if a.Status == StatusPartial {
			out = append(out, fmt.Sprintf("Strengthen your %s skills to reach the required proficiency level.", a.Name))
			break
		}
	}

	out = append(out,
		"Highlight your strongest matching skills prominently in your resume summary.",
		"Include quantifiable achievements that demonstrate your expertise in matched skills.",
	)
	return out
}
