package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-match/internal/domain/tracker"
	"career-match/internal/repository"

	"github.com/google/uuid"
)

type CreateApplicationInput struct {
	PostingID *uuid.UUID
	Title     string
	Company   string
	Location  string
	Salary    string
}

type UpdateApplicationInput struct {
	Status    string
	Interview *tracker.Interview
}

type ApplicationList struct {
	Items  []tracker.Application
	Counts map[tracker.Status]int
}

type TrackerUsecase interface {
	List(ctx context.Context, candidateID uuid.UUID, status string) (ApplicationList, error)
	Create(ctx context.Context, candidateID uuid.UUID, in CreateApplicationInput) (tracker.Application, error)
	Update(ctx context.Context, candidateID uuid.UUID, id uuid.UUID, in UpdateApplicationInput) (tracker.Application, error)
}

type Tracker struct {
	apps     repository.ApplicationRepository
	postings repository.PostingRepository
}

func NewTrackerUsecase(apps repository.ApplicationRepository, postings repository.PostingRepository) *Tracker {
	return &Tracker{apps: apps, postings: postings}
}

func (u *Tracker) List(ctx context.Context, candidateID uuid.UUID, status string) (ApplicationList, error) {
	if candidateID == uuid.Nil {
		return ApplicationList{}, ErrUnauthorized
	}
	var st tracker.Status
	if strings.TrimSpace(status) != "" && !strings.EqualFold(strings.TrimSpace(status), "all") {
		parsed, err := tracker.ParseStatus(status)
		if err != nil {
			return ApplicationList{}, ErrInvalidInput
		}
		st = parsed
	}

	items, err := u.apps.ListByCandidate(ctx, candidateID)
	if err != nil {
		return ApplicationList{}, internal(err)
	}
	return ApplicationList{
		Items:  tracker.FilterByStatus(items, st),
		Counts: tracker.CountByStatus(items),
	}, nil
}

// Create records an application. When a posting id is given, missing title,
// company, location and salary are copied from the posting.
func (u *Tracker) Create(ctx context.Context, candidateID uuid.UUID, in CreateApplicationInput) (tracker.Application, error) {
	if candidateID == uuid.Nil {
		return tracker.Application{}, ErrUnauthorized
	}

	app := tracker.Application{
		CandidateID: candidateID,
		PostingID:   in.PostingID,
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Location:    strings.TrimSpace(in.Location),
		Salary:      strings.TrimSpace(in.Salary),
		Status:      tracker.StatusApplied,
	}

	if in.PostingID != nil && *in.PostingID != uuid.Nil {
		p, err := u.postings.FindByID(ctx, *in.PostingID)
		if err != nil {
			if errors.Is(err, repository.ErrPostingNotFound) {
				return tracker.Application{}, ErrPostingNotFound
			}
			return tracker.Application{}, internal(err)
		}
		app.Title = firstNonEmpty(app.Title, p.Title)
		app.Company = firstNonEmpty(app.Company, p.Company)
		app.Location = firstNonEmpty(app.Location, p.Location)
		app.Salary = firstNonEmpty(app.Salary, p.Salary)
	} else {
		app.PostingID = nil
	}
	if app.Title == "" {
		return tracker.Application{}, ErrInvalidInput
	}

	created, err := u.apps.Create(ctx, app)
	if err != nil {
		if errors.Is(err, repository.ErrPostingNotFound) {
			return tracker.Application{}, ErrPostingNotFound
		}
		return tracker.Application{}, internal(err)
	}
	return created, nil
}

func (u *Tracker) Update(ctx context.Context, candidateID uuid.UUID, id uuid.UUID, in UpdateApplicationInput) (tracker.Application, error) {
	if candidateID == uuid.Nil {
		return tracker.Application{}, ErrUnauthorized
	}
	if id == uuid.Nil {
		return tracker.Application{}, ErrInvalidInput
	}
	st, err := tracker.ParseStatus(in.Status)
	if err != nil {
		return tracker.Application{}, ErrInvalidInput
	}
	if in.Interview != nil && in.Interview.At != nil {
		at := in.Interview.At.UTC()
		in.Interview.At = &at
	}

	updated, err := u.apps.Update(ctx, tracker.Application{
		ID:          id,
		CandidateID: candidateID,
		Status:      st,
		Interview:   in.Interview,
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return tracker.Application{}, ErrApplicationNotFound
		}
		return tracker.Application{}, internal(err)
	}
	return updated, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
