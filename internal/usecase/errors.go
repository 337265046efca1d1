package usecase

import (
	"errors"
	"fmt"

	"career-match/internal/domain/matching"
)

var (
	ErrInternal                = errors.New("internal error")
	ErrInvalidInput            = errors.New("invalid input")
	ErrUnauthorized            = errors.New("unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrSkillAlreadyExists      = errors.New("skill already exists")
	ErrSkillNotFound           = errors.New("skill not found")
	ErrInvalidProficiencyLevel = errors.New("invalid proficiency level")
	ErrInvalidRequiredLevel    = errors.New("invalid required level")
	ErrInvalidCategory         = errors.New("invalid category")
	ErrPostingNotFound         = errors.New("posting not found")
	ErrApplicationNotFound     = errors.New("application not found")
	ErrCandidateNotFound       = errors.New("candidate not found")
	ErrCandidateAlreadyExists  = errors.New("candidate already exists")
	ErrFetchFailed             = errors.New("job description fetch failed")

	ErrCatalogUnavailable = matching.ErrCatalogUnavailable
)

// internal marks err as an unexpected collaborator failure while keeping it
// inspectable with errors.Is.
func internal(err error) error {
	return fmt.Errorf("%w: %w", ErrInternal, err)
}
