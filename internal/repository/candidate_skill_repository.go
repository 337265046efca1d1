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
	ErrCandidateSkillNotFound  = errors.New("skill not found")
	ErrCandidateSkillForbidden = errors.New("forbidden")
	ErrCandidateSkillExists    = errors.New("skill already in profile")
)

type CandidateSkill struct {
	ID              uuid.UUID
	CandidateID     uuid.UUID
	Name            string
	Category        string
	Proficiency     int
	YearsExperience int
	UpdatedAt       time.Time
}

type CandidateSkillRepository interface {
	FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]CandidateSkill, error)
	Create(ctx context.Context, cs CandidateSkill) (CandidateSkill, error)
	Update(ctx context.Context, cs CandidateSkill) (CandidateSkill, error)
	Delete(ctx context.Context, id uuid.UUID, candidateID uuid.UUID) error
	ReplaceAll(ctx context.Context, candidateID uuid.UUID, skills []CandidateSkill) ([]CandidateSkill, error)
}

type PostgresCandidateSkillRepository struct {
	db database.DB
}

func NewPostgresCandidateSkillRepository(db database.DB) *PostgresCandidateSkillRepository {
	return &PostgresCandidateSkillRepository{db: db}
}

const candidateSkillColumns = `id, candidate_id, name, category, proficiency, years_experience, updated_at`

func scanCandidateSkill(row database.Row) (CandidateSkill, error) {
	var cs CandidateSkill
	err := row.Scan(&cs.ID, &cs.CandidateID, &cs.Name, &cs.Category, &cs.Proficiency, &cs.YearsExperience, &cs.UpdatedAt)
	return cs, err
}

func (r *PostgresCandidateSkillRepository) FindByCandidateID(ctx context.Context, candidateID uuid.UUID) ([]CandidateSkill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+candidateSkillColumns+`
		 FROM candidate_skills
		 WHERE candidate_id = $1
		 ORDER BY position ASC, updated_at ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateSkill, 0)
	for rows.Next() {
		cs, err := scanCandidateSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateSkillRepository) Create(ctx context.Context, cs CandidateSkill) (CandidateSkill, error) {
	if cs.ID == uuid.Nil {
		cs.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO candidate_skills (id, candidate_id, name, category, proficiency, years_experience, position)
		 VALUES ($1, $2, $3, $4, $5, $6,
		   (SELECT COALESCE(MAX(position), 0) + 1 FROM candidate_skills WHERE candidate_id = $2))
		 RETURNING `+candidateSkillColumns,
		cs.ID, cs.CandidateID, strings.TrimSpace(cs.Name), cs.Category, cs.Proficiency, cs.YearsExperience,
	)
	created, err := scanCandidateSkill(row)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return CandidateSkill{}, ErrCandidateSkillExists
		}
		return CandidateSkill{}, err
	}
	return created, nil
}

func (r *PostgresCandidateSkillRepository) Update(ctx context.Context, cs CandidateSkill) (CandidateSkill, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE candidate_skills
		 SET proficiency = $1, years_experience = $2, category = COALESCE(NULLIF($3, ''), category), updated_at = now()
		 WHERE id = $4 AND candidate_id = $5
		 RETURNING `+candidateSkillColumns,
		cs.Proficiency, cs.YearsExperience, cs.Category, cs.ID, cs.CandidateID,
	)
	updated, err := scanCandidateSkill(row)
	if err != nil {
		if isNoRows(err) {
			return CandidateSkill{}, ErrCandidateSkillNotFound
		}
		return CandidateSkill{}, err
	}
	return updated, nil
}

func (r *PostgresCandidateSkillRepository) Delete(ctx context.Context, id uuid.UUID, candidateID uuid.UUID) error {
	var owner uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT candidate_id FROM candidate_skills WHERE id = $1`, id)
	if err := row.Scan(&owner); err != nil {
		if isNoRows(err) {
			return ErrCandidateSkillNotFound
		}
		return err
	}
	if owner != candidateID {
		return ErrCandidateSkillForbidden
	}

	_, err := r.db.Exec(ctx, `DELETE FROM candidate_skills WHERE id = $1`, id)
	return err
}

// ReplaceAll swaps the candidate's whole profile in one transaction.
func (r *PostgresCandidateSkillRepository) ReplaceAll(ctx context.Context, candidateID uuid.UUID, skills []CandidateSkill) ([]CandidateSkill, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM candidate_skills WHERE candidate_id = $1`, candidateID); err != nil {
		return nil, err
	}

	out := make([]CandidateSkill, 0, len(skills))
	for i, cs := range skills {
		if cs.ID == uuid.Nil {
			cs.ID = uuid.New()
		}
		row := tx.QueryRow(ctx,
			`INSERT INTO candidate_skills (id, candidate_id, name, category, proficiency, years_experience, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING `+candidateSkillColumns,
			cs.ID, candidateID, strings.TrimSpace(cs.Name), cs.Category, cs.Proficiency, cs.YearsExperience, i+1,
		)
		saved, err := scanCandidateSkill(row)
		if err != nil {
			if postgres.IsUniqueViolation(err) {
				return nil, ErrCandidateSkillExists
			}
			return nil, err
		}
		out = append(out, saved)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return out, nil
}
