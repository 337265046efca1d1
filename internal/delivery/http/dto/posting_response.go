package dto

import (
	"time"

	"career-match/internal/domain/matching"

	"github.com/google/uuid"
)

type PostingResponse struct {
	ID             uuid.UUID               `json:"id"`
	Title          string                  `json:"title"`
	Company        string                  `json:"company"`
	Location       string                  `json:"location"`
	LocationType   string                  `json:"location_type"`
	Salary         string                  `json:"salary"`
	Experience     string                  `json:"experience"`
	Posted         string                  `json:"posted"`
	PostedAt       string                  `json:"posted_at,omitempty"`
	Applicants     int                     `json:"applicants"`
	CompanySize    string                  `json:"company_size,omitempty"`
	Description    string                  `json:"description,omitempty"`
	RequiredSkills []RequiredSkillResponse `json:"required_skills"`
	MatchedSkills  []string                `json:"matched_skills"`
	MissingSkills  []string                `json:"missing_skills"`
	MatchScore     int                     `json:"match_score"`
	Bookmarked     bool                    `json:"bookmarked"`
}

type PostingMatchResponse struct {
	Posting       PostingResponse           `json:"posting"`
	MatchScore    int                       `json:"match_score"`
	MatchedSkills []string                  `json:"matched_skills"`
	PartialSkills []string                  `json:"partial_skills"`
	MissingSkills []string                  `json:"missing_skills"`
	Assessments   []SkillAssessmentResponse `json:"assessments"`
}

func NewPostingResponse(p matching.JobPosting, withDescription bool) PostingResponse {
	out := PostingResponse{
		ID:             p.ID,
		Title:          p.Title,
		Company:        p.Company,
		Location:       p.Location,
		LocationType:   string(p.LocationType),
		Salary:         p.Salary,
		Experience:     p.Experience,
		Posted:         p.PostedLabel,
		Applicants:     p.Applicants,
		CompanySize:    p.CompanySize,
		RequiredSkills: NewRequiredSkillResponses(p.RequiredSkills),
		MatchedSkills:  nonNil(p.MatchedSkills),
		MissingSkills:  nonNil(p.MissingSkills),
		MatchScore:     p.MatchScore,
		Bookmarked:     p.Bookmarked,
	}
	if p.PostedAt != nil && !p.PostedAt.IsZero() {
		out.PostedAt = p.PostedAt.UTC().Format(time.RFC3339)
	}
	if withDescription {
		out.Description = p.Description
	}
	return out
}

func NewPostingMatchResponse(p matching.JobPosting, s matching.PostingScore) PostingMatchResponse {
	return PostingMatchResponse{
		Posting:       NewPostingResponse(p, true),
		MatchScore:    s.MatchScore,
		MatchedSkills: nonNil(s.Matched),
		PartialSkills: nonNil(s.Partial),
		MissingSkills: nonNil(s.Missing),
		Assessments:   NewSkillAssessmentResponses(s.Assessments),
	}
}
