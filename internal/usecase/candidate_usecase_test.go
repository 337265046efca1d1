package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"career-match/internal/pkg/jwt"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

type fakeCandidateRepo struct {
	items map[uuid.UUID]repository.Candidate
}

func (f *fakeCandidateRepo) Create(_ context.Context, c repository.Candidate) (repository.Candidate, error) {
	if f.items == nil {
		f.items = map[uuid.UUID]repository.Candidate{}
	}
	for _, e := range f.items {
		if strings.EqualFold(e.Email, c.Email) {
			return repository.Candidate{}, repository.ErrCandidateAlreadyExists
		}
	}
	c.CreatedAt = time.Now().UTC()
	f.items[c.ID] = c
	return c, nil
}

func (f *fakeCandidateRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Candidate, error) {
	c, ok := f.items[id]
	if !ok {
		return repository.Candidate{}, repository.ErrCandidateNotFound
	}
	return c, nil
}

func TestCandidateUsecase_Register(t *testing.T) {
	svc := jwt.NewHMACService("test-secret", time.Hour)
	uc := NewCandidateUsecase(&fakeCandidateRepo{}, svc)
	ctx := context.Background()

	session, err := uc.Register(ctx, RegisterCandidateInput{Name: "Sam", Email: "Sam@Example.com"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if session.Candidate.Email != "sam@example.com" {
		t.Fatalf("expected lower-cased email, got %s", session.Candidate.Email)
	}

	claims, err := svc.ValidateToken(session.AccessToken)
	if err != nil {
		t.Fatalf("expected a valid token, got %v", err)
	}
	if claims.CandidateID != session.Candidate.ID {
		t.Fatalf("expected token for %s, got %s", session.Candidate.ID, claims.CandidateID)
	}

	got, err := uc.Get(ctx, session.Candidate.ID)
	if err != nil || got.Name != "Sam" {
		t.Fatalf("unexpected get result: %+v %v", got, err)
	}

	if _, err := uc.Register(ctx, RegisterCandidateInput{Name: "Sam", Email: "sam@example.com"}); !errors.Is(err, ErrCandidateAlreadyExists) {
		t.Fatalf("expected ErrCandidateAlreadyExists, got %v", err)
	}
	if _, err := uc.Register(ctx, RegisterCandidateInput{Name: "Sam", Email: "not-an-email"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.Get(ctx, uuid.New()); !errors.Is(err, ErrCandidateNotFound) {
		t.Fatalf("expected ErrCandidateNotFound, got %v", err)
	}
}
