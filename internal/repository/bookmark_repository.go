package repository

import (
	"context"

	"career-match/internal/database"

	"github.com/google/uuid"
)

type BookmarkRepository interface {
	Toggle(ctx context.Context, candidateID, postingID uuid.UUID) (bool, error)
	ListPostingIDs(ctx context.Context, candidateID uuid.UUID) (map[uuid.UUID]struct{}, error)
}

type PostgresBookmarkRepository struct {
	db database.DB
}

func NewPostgresBookmarkRepository(db database.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

// Toggle flips the bookmark and reports whether it is now set.
func (r *PostgresBookmarkRepository) Toggle(ctx context.Context, candidateID, postingID uuid.UUID) (bool, error) {
	removed, err := r.db.Exec(ctx,
		`DELETE FROM bookmarks WHERE candidate_id = $1 AND posting_id = $2`,
		candidateID, postingID,
	)
	if err != nil {
		return false, err
	}
	if removed > 0 {
		return false, nil
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO bookmarks (candidate_id, posting_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		candidateID, postingID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return false, ErrPostingNotFound
		}
		return false, err
	}
	return true, nil
}

func (r *PostgresBookmarkRepository) ListPostingIDs(ctx context.Context, candidateID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	rows, err := r.db.Query(ctx, `SELECT posting_id FROM bookmarks WHERE candidate_id = $1`, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[uuid.UUID]struct{}{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
