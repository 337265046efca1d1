package repository

import (
	"context"
	"errors"
	"time"

	"career-match/internal/database"
	"career-match/internal/domain/tracker"

	"github.com/google/uuid"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]tracker.Application, error)
	Create(ctx context.Context, a tracker.Application) (tracker.Application, error)
	Update(ctx context.Context, a tracker.Application) (tracker.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, candidate_id, posting_id, title, company, location, salary, status, applied_at, updated_at,
	interview_at, interview_time_label, interview_mode, meeting_link, interviewer`

func scanApplication(row database.Row) (tracker.Application, error) {
	var a tracker.Application
	var status string
	var postingID *uuid.UUID
	var at *time.Time
	var iv tracker.Interview
	err := row.Scan(&a.ID, &a.CandidateID, &postingID, &a.Title, &a.Company, &a.Location, &a.Salary, &status,
		&a.AppliedAt, &a.UpdatedAt, &at, &iv.TimeLabel, &iv.Mode, &iv.MeetingLink, &iv.Interviewer)
	if err != nil {
		return tracker.Application{}, err
	}
	a.PostingID = postingID
	a.Status = tracker.Status(status)
	if at != nil || iv.TimeLabel != "" || iv.Mode != "" || iv.MeetingLink != "" || iv.Interviewer != "" {
		iv.At = at
		a.Interview = &iv
	}
	return a, nil
}

func interviewFields(a tracker.Application) (*time.Time, string, string, string, string) {
	if a.Interview == nil {
		return nil, "", "", "", ""
	}
	iv := a.Interview
	return iv.At, iv.TimeLabel, iv.Mode, iv.MeetingLink, iv.Interviewer
}

func (r *PostgresApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]tracker.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM applications
		 WHERE candidate_id = $1
		 ORDER BY applied_at DESC, id ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]tracker.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a tracker.Application) (tracker.Application, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = tracker.StatusApplied
	}
	at, label, mode, link, interviewer := interviewFields(a)

	row := r.db.QueryRow(ctx,
		`INSERT INTO applications (id, candidate_id, posting_id, title, company, location, salary, status,
		   interview_at, interview_time_label, interview_mode, meeting_link, interviewer)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING `+applicationColumns,
		a.ID, a.CandidateID, a.PostingID, a.Title, a.Company, a.Location, a.Salary, string(a.Status),
		at, label, mode, link, interviewer,
	)
	created, err := scanApplication(row)
	if err != nil {
		if isForeignKeyViolation(err) {
			return tracker.Application{}, ErrPostingNotFound
		}
		return tracker.Application{}, err
	}
	return created, nil
}

func (r *PostgresApplicationRepository) Update(ctx context.Context, a tracker.Application) (tracker.Application, error) {
	at, label, mode, link, interviewer := interviewFields(a)

	row := r.db.QueryRow(ctx,
		`UPDATE applications
		 SET status = $1, interview_at = $2, interview_time_label = $3, interview_mode = $4,
		     meeting_link = $5, interviewer = $6, updated_at = now()
		 WHERE id = $7 AND candidate_id = $8
		 RETURNING `+applicationColumns,
		string(a.Status), at, label, mode, link, interviewer, a.ID, a.CandidateID,
	)
	updated, err := scanApplication(row)
	if err != nil {
		if isNoRows(err) {
			return tracker.Application{}, ErrApplicationNotFound
		}
		return tracker.Application{}, err
	}
	return updated, nil
}
