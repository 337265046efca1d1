package tracker

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidStatus = errors.New("invalid application status")

type Status string

const (
	StatusApplied     Status = "applied"
	StatusViewed      Status = "viewed"
	StatusShortlisted Status = "shortlisted"
	StatusInterview   Status = "interview"
	StatusRejected    Status = "rejected"
)

var AllStatuses = []Status{StatusApplied, StatusViewed, StatusShortlisted, StatusInterview, StatusRejected}

func ParseStatus(s string) (Status, error) {
	v := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range AllStatuses {
		if v == st {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

type Interview struct {
	At          *time.Time
	TimeLabel   string
	Mode        string
	MeetingLink string
	Interviewer string
}

type Application struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	PostingID   *uuid.UUID
	Title       string
	Company     string
	Location    string
	Salary      string
	Status      Status
	AppliedAt   time.Time
	UpdatedAt   time.Time
	Interview   *Interview
}

// FilterByStatus keeps the input order, except for the interview status where
// scheduled interviews come first ordered by date.
func FilterByStatus(apps []Application, status Status) []Application {
	out := make([]Application, 0, len(apps))
	for _, a := range apps {
		if status == "" || a.Status == status {
			out = append(out, a)
		}
	}
	if status == StatusInterview {
		SortByInterviewDate(out)
	}
	return out
}

func SortByInterviewDate(apps []Application) {
	sort.SliceStable(apps, func(i, j int) bool {
		ai, aj := interviewAt(apps[i]), interviewAt(apps[j])
		if ai == nil || aj == nil {
			return ai != nil && aj == nil
		}
		return ai.Before(*aj)
	})
}

func interviewAt(a Application) *time.Time {
	if a.Interview == nil {
		return nil
	}
	return a.Interview.At
}

func CountByStatus(apps []Application) map[Status]int {
	out := make(map[Status]int, len(AllStatuses))
	for _, st := range AllStatuses {
		out[st] = 0
	}
	for _, a := range apps {
		out[a.Status]++
	}
	return out
}
