package repository

import (
	"context"
	"errors"
	"strings"

	"career-match/internal/database"
	"career-match/internal/database/postgres"

	"github.com/google/uuid"
)

var ErrSkillAlreadyExists = errors.New("skill already exists")

type Skill struct {
	ID            uuid.UUID
	Name          string
	Category      string
	RequiredLevel int
	Position      int
}

type SkillRepository interface {
	GetAllSkills(ctx context.Context) ([]Skill, error)
	CreateSkill(ctx context.Context, s Skill) (Skill, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) GetAllSkills(ctx context.Context) ([]Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, category, required_level, position
		 FROM skills
		 ORDER BY position ASC, created_at ASC, name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Skill, 0)
	for rows.Next() {
		var s Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.RequiredLevel, &s.Position); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateSkill appends s to the end of the vocabulary.
func (r *PostgresSkillRepository) CreateSkill(ctx context.Context, s Skill) (Skill, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.Name = strings.TrimSpace(s.Name)

	row := r.db.QueryRow(ctx,
		`INSERT INTO skills (id, name, category, required_level, position)
		 VALUES ($1, $2, $3, $4, (SELECT COALESCE(MAX(position), 0) + 1 FROM skills))
		 RETURNING position`,
		s.ID, s.Name, s.Category, s.RequiredLevel,
	)
	if err := row.Scan(&s.Position); err != nil {
		if postgres.IsUniqueViolation(err) {
			return Skill{}, ErrSkillAlreadyExists
		}
		return Skill{}, err
	}
	return s, nil
}
