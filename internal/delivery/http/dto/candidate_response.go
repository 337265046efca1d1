package dto

import (
	"time"

	"github.com/google/uuid"
)

type CandidateResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type CandidateSessionResponse struct {
	Candidate   CandidateResponse `json:"candidate"`
	AccessToken string            `json:"access_token"`
	ExpiresAt   time.Time         `json:"expires_at"`
}
