package repository

import (
	"context"
	"time"

	"career-match/internal/database"

	"github.com/google/uuid"
)

type AnalysisRecord struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	RequestID   string
	Source      string
	Score       int
	Result      []byte
	CreatedAt   time.Time
}

type AnalysisRepository interface {
	Save(ctx context.Context, rec AnalysisRecord) (bool, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]AnalysisRecord, error)
}

type PostgresAnalysisRepository struct {
	db database.DB
}

func NewPostgresAnalysisRepository(db database.DB) *PostgresAnalysisRepository {
	return &PostgresAnalysisRepository{db: db}
}

// Save stores rec and reports false when a record with the same request id
// already exists.
func (r *PostgresAnalysisRepository) Save(ctx context.Context, rec AnalysisRecord) (bool, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	var requestID *string
	if rec.RequestID != "" {
		requestID = &rec.RequestID
	}

	affected, err := r.db.Exec(ctx,
		`INSERT INTO analysis_results (id, candidate_id, request_id, source, score, result)
		 VALUES ($1, $2, $3, $4, $5, $6::jsonb)
		 ON CONFLICT (request_id) WHERE request_id IS NOT NULL DO NOTHING`,
		rec.ID, rec.CandidateID, requestID, rec.Source, rec.Score, string(rec.Result),
	)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *PostgresAnalysisRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, candidate_id, COALESCE(request_id, ''), source, score, result::text, created_at
		 FROM analysis_results
		 WHERE candidate_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		candidateID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AnalysisRecord, 0)
	for rows.Next() {
		var rec AnalysisRecord
		var result string
		if err := rows.Scan(&rec.ID, &rec.CandidateID, &rec.RequestID, &rec.Source, &rec.Score, &result, &rec.CreatedAt); err != nil {
			return nil, err
		}
		rec.Result = []byte(result)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
