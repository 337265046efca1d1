package dto

import (
	"time"

	"career-match/internal/domain/tracker"

	"github.com/google/uuid"
)

type InterviewResponse struct {
	At          string `json:"at,omitempty"`
	Time        string `json:"time,omitempty"`
	Mode        string `json:"mode,omitempty"`
	MeetingLink string `json:"meeting_link,omitempty"`
	Interviewer string `json:"interviewer,omitempty"`
}

type ApplicationResponse struct {
	ID        uuid.UUID          `json:"id"`
	PostingID *uuid.UUID         `json:"job_id,omitempty"`
	Title     string             `json:"title"`
	Company   string             `json:"company"`
	Location  string             `json:"location"`
	Salary    string             `json:"salary"`
	Status    string             `json:"status"`
	AppliedAt string             `json:"applied_at"`
	UpdatedAt string             `json:"updated_at,omitempty"`
	Interview *InterviewResponse `json:"interview,omitempty"`
}

type ApplicationListResponse struct {
	Items  []ApplicationResponse `json:"items"`
	Counts map[string]int        `json:"counts"`
}

func NewApplicationResponse(a tracker.Application) ApplicationResponse {
	out := ApplicationResponse{
		ID:        a.ID,
		PostingID: a.PostingID,
		Title:     a.Title,
		Company:   a.Company,
		Location:  a.Location,
		Salary:    a.Salary,
		Status:    string(a.Status),
		AppliedAt: formatTime(a.AppliedAt),
		UpdatedAt: formatTime(a.UpdatedAt),
	}
	if a.Interview != nil {
		iv := &InterviewResponse{
			Time:        a.Interview.TimeLabel,
			Mode:        a.Interview.Mode,
			MeetingLink: a.Interview.MeetingLink,
			Interviewer: a.Interview.Interviewer,
		}
		if a.Interview.At != nil {
			iv.At = formatTime(*a.Interview.At)
		}
		out.Interview = iv
	}
	return out
}

func NewApplicationListResponse(items []tracker.Application, counts map[tracker.Status]int) ApplicationListResponse {
	out := ApplicationListResponse{
		Items:  make([]ApplicationResponse, 0, len(items)),
		Counts: make(map[string]int, len(counts)),
	}
	for _, a := range items {
		out.Items = append(out.Items, NewApplicationResponse(a))
	}
	for st, n := range counts {
		out.Counts[string(st)] = n
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
