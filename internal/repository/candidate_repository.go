package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-match/internal/database"
	"career-match/internal/database/postgres"

	"github.com/google/uuid"
)

var (
	ErrCandidateNotFound      = errors.New("candidate not found")
	ErrCandidateAlreadyExists = errors.New("candidate already exists")
)

type Candidate struct {
	ID        uuid.UUID
	Name      string
	Email     string
	CreatedAt time.Time
}

type CandidateRepository interface {
	Create(ctx context.Context, c Candidate) (Candidate, error)
	FindByID(ctx context.Context, id uuid.UUID) (Candidate, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, c Candidate) (Candidate, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO candidates (id, name, email) VALUES ($1, $2, $3) RETURNING created_at`,
		c.ID, strings.TrimSpace(c.Name), strings.TrimSpace(c.Email),
	)
	if err := row.Scan(&c.CreatedAt); err != nil {
		if postgres.IsUniqueViolation(err) {
			return Candidate{}, ErrCandidateAlreadyExists
		}
		return Candidate{}, err
	}
	return c, nil
}

func (r *PostgresCandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (Candidate, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, email, created_at FROM candidates WHERE id = $1`, id)

	var c Candidate
	if err := row.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
		if isNoRows(err) {
			return Candidate{}, ErrCandidateNotFound
		}
		return Candidate{}, err
	}
	return c, nil
}
