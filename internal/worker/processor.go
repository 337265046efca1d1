package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"career-match/internal/domain/matching"
	"career-match/internal/usecase"

	"github.com/google/uuid"
)

// AnalysisJob is the body of a jd_analysis queue message.
type AnalysisJob struct {
	RequestID   string    `json:"request_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Text        string    `json:"text"`
	URL         string    `json:"url,omitempty"`
}

type Analyzer interface {
	Analyze(ctx context.Context, candidateID uuid.UUID, in usecase.AnalysisInput) (matching.AnalysisResult, error)
}

// Claimer records request ids already taken by some worker.
type Claimer interface {
	Available() bool
	SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
}

type Decision int

const (
	Ack Decision = iota
	Requeue
	Drop
)

func (d Decision) String() string {
	switch d {
	case Ack:
		return "ack"
	case Requeue:
		return "requeue"
	default:
		return "drop"
	}
}

const claimTTL = 10 * time.Minute

// StatusUpdate is published for every state change of a queued analysis.
type StatusUpdate struct {
	RequestID   string    `json:"request_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Status      string    `json:"status"`
	Score       *int      `json:"score,omitempty"`
	Message     string    `json:"message,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type Processor struct {
	analyzer  Analyzer
	claims    Claimer
	publisher Publisher
	log       *log.Logger
	now       func() time.Time
}

func NewProcessor(analyzer Analyzer, claims Claimer, publisher Publisher, logger *log.Logger) *Processor {
	if logger == nil {
		logger = log.Default()
	}
	return &Processor{analyzer: analyzer, claims: claims, publisher: publisher, log: logger, now: time.Now}
}

// Process runs one queued analysis and tells the caller how to settle the
// message. A redelivered message that fails transiently is dropped instead of
// requeued a second time.
func (p *Processor) Process(ctx context.Context, body []byte, redelivered bool) Decision {
	var job AnalysisJob
	if err := json.Unmarshal(body, &job); err != nil {
		p.log.Printf("worker=jd_analysis status=invalid err=%v", err)
		return Drop
	}
	job.RequestID = strings.TrimSpace(job.RequestID)
	if job.CandidateID == uuid.Nil || (strings.TrimSpace(job.Text) == "" && strings.TrimSpace(job.URL) == "") {
		p.log.Printf("worker=jd_analysis status=invalid request_id=%s", job.RequestID)
		p.publish(ctx, job, "failed", nil, "invalid message")
		return Drop
	}
	if job.RequestID == "" {
		job.RequestID = uuid.NewString()
	}

	key := claimKey(job.RequestID)
	if p.claims != nil && p.claims.Available() {
		ok, err := p.claims.SetIfNotExists(ctx, key, job.CandidateID.String(), claimTTL)
		if err == nil && !ok {
			p.log.Printf("worker=jd_analysis status=duplicate request_id=%s", job.RequestID)
			return Ack
		}
	}

	p.publish(ctx, job, "processing", nil, "")
	start := time.Now()
	res, err := p.analyzer.Analyze(ctx, job.CandidateID, usecase.AnalysisInput{
		Text:      job.Text,
		URL:       job.URL,
		RequestID: job.RequestID,
		Source:    "queue",
	})
	if err != nil {
		d := decide(err, redelivered)
		p.log.Printf("worker=jd_analysis status=error request_id=%s candidate_id=%s decision=%s err=%v duration=%s", job.RequestID, job.CandidateID, d, err, time.Since(start))
		if d == Requeue && p.claims != nil && p.claims.Available() {
			_ = p.claims.Delete(context.WithoutCancel(ctx), key)
		}
		p.publish(ctx, job, "failed", nil, failureMessage(err))
		return d
	}

	score := res.Score
	p.log.Printf("worker=jd_analysis status=ok request_id=%s candidate_id=%s score=%d duration=%s", job.RequestID, job.CandidateID, score, time.Since(start))
	p.publish(ctx, job, "completed", &score, "")
	return Ack
}

func decide(err error, redelivered bool) Decision {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, usecase.ErrFetchFailed):
		return Drop
	case errors.Is(err, context.Canceled):
		return Requeue
	case redelivered:
		return Drop
	default:
		return Requeue
	}
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, usecase.ErrFetchFailed):
		return "could not fetch job description"
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return "skill catalog unavailable"
	case errors.Is(err, usecase.ErrInvalidInput):
		return "invalid job description"
	default:
		return "analysis failed"
	}
}

func (p *Processor) publish(ctx context.Context, job AnalysisJob, status string, score *int, msg string) {
	if p.publisher == nil {
		return
	}
	body, err := json.Marshal(StatusUpdate{
		RequestID:   job.RequestID,
		CandidateID: job.CandidateID,
		Status:      status,
		Score:       score,
		Message:     msg,
		Timestamp:   p.now().UTC(),
	})
	if err != nil {
		return
	}
	if err := p.publisher.Publish(context.WithoutCancel(ctx), routingKey(job.RequestID), body); err != nil {
		p.log.Printf("worker=jd_analysis status=publish_error request_id=%s err=%v", job.RequestID, err)
	}
}

func claimKey(requestID string) string {
	return "worker:jd_analysis:" + requestID
}

func routingKey(requestID string) string {
	return fmt.Sprintf("analysis.%s", requestID)
}
