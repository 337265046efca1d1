package dto

import (
	"career-match/internal/domain/matching"

	"github.com/google/uuid"
)

type JobInfoResponse struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
}

type RequiredSkillResponse struct {
	Name          string `json:"name"`
	RequiredLevel int    `json:"required_level"`
	Category      string `json:"category"`
}

type SkillAssessmentResponse struct {
	Name            string `json:"name"`
	UserProficiency int    `json:"user_proficiency"`
	RequiredLevel   int    `json:"required_level"`
	Gap             int    `json:"gap"`
	Status          string `json:"status"`
	Category        string `json:"category"`
}

type ResourceResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Provider        string    `json:"provider"`
	Duration        string    `json:"duration"`
	Level           string    `json:"level"`
	AddressedSkills []string  `json:"skills"`
	Rating          float64   `json:"rating"`
	URL             string    `json:"url"`
}

type AnalysisResponse struct {
	JobInfo              JobInfoResponse           `json:"job_info"`
	Score                int                       `json:"score"`
	ScoreLabel           string                    `json:"score_label"`
	Summary              string                    `json:"summary"`
	RequiredSkills       []RequiredSkillResponse   `json:"required_skills"`
	Assessments          []SkillAssessmentResponse `json:"assessments"`
	MatchedSkills        []string                  `json:"matched_skills"`
	PartialSkills        []string                  `json:"partial_skills"`
	MissingSkills        []string                  `json:"missing_skills"`
	Suggestions          []string                  `json:"suggestions"`
	RecommendedResources []ResourceResponse        `json:"recommended_courses"`
	ResourcesUnavailable bool                      `json:"courses_unavailable"`
}

func NewAnalysisResponse(res matching.AnalysisResult) AnalysisResponse {
	out := AnalysisResponse{
		JobInfo:              JobInfoResponse{Title: res.JobInfo.Title, Company: res.JobInfo.Company, Location: res.JobInfo.Location},
		Score:                res.Score,
		ScoreLabel:           res.ScoreLabel,
		Summary:              res.Summary,
		RequiredSkills:       NewRequiredSkillResponses(res.RequiredSkills),
		Assessments:          NewSkillAssessmentResponses(res.Assessments),
		MatchedSkills:        nonNil(res.MatchedSkills),
		PartialSkills:        nonNil(res.PartialSkills),
		MissingSkills:        nonNil(res.MissingSkills),
		Suggestions:          nonNil(res.Suggestions),
		RecommendedResources: NewResourceResponses(res.RecommendedResources),
		ResourcesUnavailable: res.ResourcesUnavailable,
	}
	if out.ScoreLabel == "" {
		out.ScoreLabel = matching.ScoreLabel(res.Score)
	}
	return out
}

func NewRequiredSkillResponses(in []matching.RequiredSkill) []RequiredSkillResponse {
	out := make([]RequiredSkillResponse, 0, len(in))
	for _, r := range in {
		out = append(out, RequiredSkillResponse{Name: r.Name, RequiredLevel: r.RequiredLevel, Category: string(r.Category)})
	}
	return out
}

func NewSkillAssessmentResponses(in []matching.SkillAssessment) []SkillAssessmentResponse {
	out := make([]SkillAssessmentResponse, 0, len(in))
	for _, a := range in {
		out = append(out, SkillAssessmentResponse{
			Name:            a.Name,
			UserProficiency: a.UserProficiency,
			RequiredLevel:   a.RequiredLevel,
			Gap:             a.Gap,
			Status:          string(a.Status),
			Category:        string(a.Category),
		})
	}
	return out
}

func NewResourceResponses(in []matching.Resource) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(in))
	for _, r := range in {
		out = append(out, ResourceResponse{
			ID:              r.ID,
			Title:           r.Title,
			Provider:        r.Provider,
			Duration:        r.DurationLabel,
			Level:           r.LevelLabel,
			AddressedSkills: nonNil(r.AddressedSkills),
			Rating:          r.Rating,
			URL:             r.URL,
		})
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
