package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"career-match/internal/pkg/jwt"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

type RegisterCandidateInput struct {
	Name  string
	Email string
}

type CandidateSession struct {
	Candidate   repository.Candidate
	AccessToken string
	ExpiresAt   time.Time
}

type CandidateUsecase interface {
	Register(ctx context.Context, in RegisterCandidateInput) (CandidateSession, error)
	Get(ctx context.Context, candidateID uuid.UUID) (repository.Candidate, error)
}

type Candidates struct {
	repo repository.CandidateRepository
	jwt  jwt.Service
}

func NewCandidateUsecase(repo repository.CandidateRepository, jwtSvc jwt.Service) *Candidates {
	return &Candidates{repo: repo, jwt: jwtSvc}
}

func (u *Candidates) Register(ctx context.Context, in RegisterCandidateInput) (CandidateSession, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return CandidateSession{}, ErrInvalidInput
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return CandidateSession{}, ErrInvalidInput
	}

	c, err := u.repo.Create(ctx, repository.Candidate{ID: uuid.New(), Name: name, Email: strings.ToLower(email)})
	if err != nil {
		if errors.Is(err, repository.ErrCandidateAlreadyExists) {
			return CandidateSession{}, ErrCandidateAlreadyExists
		}
		return CandidateSession{}, internal(err)
	}

	token, exp, err := u.jwt.GenerateAccessToken(c.ID, c.Email)
	if err != nil {
		return CandidateSession{}, internal(err)
	}
	return CandidateSession{Candidate: c, AccessToken: token, ExpiresAt: exp}, nil
}

func (u *Candidates) Get(ctx context.Context, candidateID uuid.UUID) (repository.Candidate, error) {
	if candidateID == uuid.Nil {
		return repository.Candidate{}, ErrUnauthorized
	}
	c, err := u.repo.FindByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrCandidateNotFound) {
			return repository.Candidate{}, ErrCandidateNotFound
		}
		return repository.Candidate{}, internal(err)
	}
	return c, nil
}
