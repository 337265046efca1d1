package matching

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type LocationType string

const (
	LocationRemote LocationType = "remote"
	LocationHybrid LocationType = "hybrid"
	LocationOnsite LocationType = "onsite"
)

func ParseLocationType(s string) (LocationType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "remote":
		return LocationRemote, true
	case "hybrid":
		return LocationHybrid, true
	case "onsite", "on-site", "on site":
		return LocationOnsite, true
	default:
		return "", false
	}
}

type JobPosting struct {
	ID           uuid.UUID
	Title        string
	Company      string
	Location     string
	LocationType LocationType
	Salary       string
	Experience   string
	PostedLabel  string
	PostedAt     *time.Time
	Description  string
	Applicants   int
	CompanySize  string

	RequiredSkills []RequiredSkill
	MatchedSkills  []string
	MissingSkills  []string

	MatchScore int
	Bookmarked bool
}

type PostingScore struct {
	MatchScore  int
	Matched     []string
	Partial     []string
	Missing     []string
	Assessments []SkillAssessment
}

// PostingRequirements returns the posting's declared skills, deduplicated by
// name with the first occurrence kept.
func PostingRequirements(p *JobPosting) ([]RequiredSkill, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil posting", ErrInvalidInput)
	}
	set := newRequirementSet(len(p.RequiredSkills))
	for _, r := range p.RequiredSkills {
		set.add(r)
	}
	return set.items, nil
}

func ScorePosting(p *JobPosting, profile Profile) (PostingScore, error) {
	reqs, err := PostingRequirements(p)
	if err != nil {
		return PostingScore{}, err
	}
	assessments := AssessAll(reqs, profile)
	matched, partial, missing := Partition(assessments)
	return PostingScore{
		MatchScore:  Aggregate(assessments),
		Matched:     matched,
		Partial:     partial,
		Missing:     missing,
		Assessments: assessments,
	}, nil
}

// scoreTaggedPosting scores from the posting's pre-tagged matched list.
func scoreTaggedPosting(p *JobPosting) (int, error) {
	if p == nil {
		return 0, fmt.Errorf("%w: nil posting", ErrInvalidInput)
	}
	names := make([]string, 0, len(p.RequiredSkills))
	for _, r := range p.RequiredSkills {
		names = append(names, r.Name)
	}
	return scoreTagged(names, p.MatchedSkills), nil
}
