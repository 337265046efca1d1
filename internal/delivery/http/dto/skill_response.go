package dto

import "github.com/google/uuid"

type SkillResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	RequiredLevel int       `json:"required_level"`
}

type CandidateSkillResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Proficiency     int       `json:"proficiency"`
	YearsExperience int       `json:"years_experience"`
}
