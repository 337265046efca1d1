package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"career-match/internal/database"
	"career-match/internal/domain/matching"

	"github.com/google/uuid"
)

var ErrPostingNotFound = errors.New("posting not found")

type PostingFilter struct {
	LocationType string
	Limit        int
	Offset       int
}

type PostingRepository interface {
	List(ctx context.Context, filter PostingFilter) ([]matching.JobPosting, error)
	FindByID(ctx context.Context, id uuid.UUID) (matching.JobPosting, error)
	Create(ctx context.Context, p matching.JobPosting) (matching.JobPosting, error)
	ListUntagged(ctx context.Context, limit int) ([]matching.JobPosting, error)
	ReplaceSkills(ctx context.Context, postingID uuid.UUID, skills []matching.RequiredSkill) error
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

const postingColumns = `id, title, company, location, location_type, salary, experience, posted_label, posted_at, description, applicants, company_size`

func scanPosting(row database.Row) (matching.JobPosting, error) {
	var p matching.JobPosting
	var locationType string
	var postedAt *time.Time
	err := row.Scan(&p.ID, &p.Title, &p.Company, &p.Location, &locationType, &p.Salary, &p.Experience,
		&p.PostedLabel, &postedAt, &p.Description, &p.Applicants, &p.CompanySize)
	if err != nil {
		return matching.JobPosting{}, err
	}
	if lt, ok := matching.ParseLocationType(locationType); ok {
		p.LocationType = lt
	} else {
		p.LocationType = matching.LocationOnsite
	}
	p.PostedAt = postedAt
	p.RequiredSkills = []matching.RequiredSkill{}
	return p, nil
}

// List returns postings in storage order. A zero Limit returns every match.
func (r *PostgresPostingRepository) List(ctx context.Context, filter PostingFilter) ([]matching.JobPosting, error) {
	query := `SELECT ` + postingColumns + `
		 FROM postings
		 WHERE ($1 = '' OR location_type = $1)
		 ORDER BY created_at ASC, id ASC`
	args := []any{strings.ToLower(strings.TrimSpace(filter.LocationType))}
	if filter.Limit > 0 {
		query += ` LIMIT $2`
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query += ` OFFSET $` + strconv.Itoa(len(args)+1)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	postings, err := collectPostings(rows)
	if err != nil {
		return nil, err
	}
	if err := r.attachSkills(ctx, postings); err != nil {
		return nil, err
	}
	return postings, nil
}

func (r *PostgresPostingRepository) FindByID(ctx context.Context, id uuid.UUID) (matching.JobPosting, error) {
	row := r.db.QueryRow(ctx, `SELECT `+postingColumns+` FROM postings WHERE id = $1`, id)
	p, err := scanPosting(row)
	if err != nil {
		if isNoRows(err) {
			return matching.JobPosting{}, ErrPostingNotFound
		}
		return matching.JobPosting{}, err
	}

	out := []matching.JobPosting{p}
	if err := r.attachSkills(ctx, out); err != nil {
		return matching.JobPosting{}, err
	}
	return out[0], nil
}

func (r *PostgresPostingRepository) Create(ctx context.Context, p matching.JobPosting) (matching.JobPosting, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.LocationType == "" {
		p.LocationType = matching.LocationOnsite
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return matching.JobPosting{}, err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	var taggedAt *time.Time
	if len(p.RequiredSkills) > 0 {
		now := time.Now().UTC()
		taggedAt = &now
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO postings (id, title, company, location, location_type, salary, experience, posted_label, posted_at, description, applicants, company_size, tagged_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 ON CONFLICT (id) DO NOTHING`,
		p.ID, p.Title, p.Company, p.Location, string(p.LocationType), p.Salary, p.Experience,
		p.PostedLabel, p.PostedAt, p.Description, p.Applicants, p.CompanySize, taggedAt,
	)
	if err != nil {
		return matching.JobPosting{}, err
	}
	if err := insertPostingSkills(ctx, tx, p.ID, p.RequiredSkills); err != nil {
		return matching.JobPosting{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return matching.JobPosting{}, err
	}
	return p, nil
}

func (r *PostgresPostingRepository) ListUntagged(ctx context.Context, limit int) ([]matching.JobPosting, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+postingColumns+`
		 FROM postings
		 WHERE tagged_at IS NULL
		 ORDER BY created_at ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return collectPostings(rows)
}

func (r *PostgresPostingRepository) ReplaceSkills(ctx context.Context, postingID uuid.UUID, skills []matching.RequiredSkill) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	affected, err := tx.Exec(ctx, `UPDATE postings SET tagged_at = now() WHERE id = $1`, postingID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrPostingNotFound
	}
	if _, err := tx.Exec(ctx, `DELETE FROM posting_skills WHERE posting_id = $1`, postingID); err != nil {
		return err
	}
	if err := insertPostingSkills(ctx, tx, postingID, skills); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertPostingSkills(ctx context.Context, tx database.Tx, postingID uuid.UUID, skills []matching.RequiredSkill) error {
	for i, s := range skills {
		_, err := tx.Exec(ctx,
			`INSERT INTO posting_skills (posting_id, name, category, required_level, position)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (posting_id, lower(name)) DO NOTHING`,
			postingID, strings.TrimSpace(s.Name), string(s.Category), s.RequiredLevel, i+1,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func collectPostings(rows database.Rows) ([]matching.JobPosting, error) {
	defer rows.Close()

	out := make([]matching.JobPosting, 0)
	for rows.Next() {
		p, err := scanPosting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresPostingRepository) attachSkills(ctx context.Context, postings []matching.JobPosting) error {
	if len(postings) == 0 {
		return nil
	}
	ids := make([]string, 0, len(postings))
	index := make(map[uuid.UUID]int, len(postings))
	for i, p := range postings {
		ids = append(ids, p.ID.String())
		index[p.ID] = i
	}

	rows, err := r.db.Query(ctx,
		`SELECT posting_id, name, category, required_level
		 FROM posting_skills
		 WHERE posting_id = ANY($1::uuid[])
		 ORDER BY posting_id, position ASC`,
		ids,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var postingID uuid.UUID
		var s matching.RequiredSkill
		var category string
		if err := rows.Scan(&postingID, &s.Name, &category, &s.RequiredLevel); err != nil {
			return err
		}
		s.Category = parseCategory(category)
		if i, ok := index[postingID]; ok {
			postings[i].RequiredSkills = append(postings[i].RequiredSkills, s)
		}
	}
	return rows.Err()
}
