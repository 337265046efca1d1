package ws

import (
	"context"
	"errors"
	"log"
	"sync"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/domain/matching"
	"career-match/internal/usecase"

	"github.com/google/uuid"
)

type Analyzer interface {
	Analyze(ctx context.Context, candidateID uuid.UUID, in usecase.AnalysisInput) (matching.AnalysisResult, error)
}

// Session runs analyses for one connection. Only the latest request is live:
// submitting a new one cancels the previous run and results of superseded runs
// are dropped.
type Session struct {
	analyzer    Analyzer
	candidateID uuid.UUID
	deliver     func(Event)
	logger      *log.Logger

	ctx    context.Context
	stop   context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	last   *Request
	closed bool
}

func NewSession(analyzer Analyzer, candidateID uuid.UUID, deliver func(Event), logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	ctx, stop := context.WithCancel(context.Background())
	return &Session{
		analyzer:    analyzer,
		candidateID: candidateID,
		deliver:     deliver,
		logger:      logger,
		ctx:         ctx,
		stop:        stop,
	}
}

func (s *Session) Submit(req Request) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.seq++
	seq := s.seq
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	r := req
	s.last = &r
	s.wg.Add(1)
	s.mu.Unlock()

	go s.run(ctx, seq, req)
}

// Rerun repeats the latest request, used when the candidate's profile changes.
func (s *Session) Rerun() bool {
	s.mu.Lock()
	last := s.last
	s.mu.Unlock()
	if last == nil {
		return false
	}
	s.Submit(*last)
	return true
}

func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.stop()
	s.wg.Wait()
}

func (s *Session) run(ctx context.Context, seq uint64, req Request) {
	defer s.wg.Done()

	res, err := s.analyzer.Analyze(ctx, s.candidateID, usecase.AnalysisInput{
		Text:      req.Text,
		URL:       req.URL,
		RequestID: req.RequestID,
		Source:    "ws",
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq || ctx.Err() != nil {
		s.logger.Printf("WS analysis dropped | candidate_id=%s request_id=%s reason=superseded", s.candidateID, req.RequestID)
		return
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		ev := newEvent(EventAnalysisError, req.RequestID)
		ev.Error = publicError(err)
		s.deliver(ev)
		return
	}

	ev := newEvent(EventAnalysisResult, req.RequestID)
	body := dto.NewAnalysisResponse(res)
	ev.Result = &body
	s.deliver(ev)
}

func publicError(err error) string {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return "text or url is required"
	case errors.Is(err, usecase.ErrFetchFailed):
		return "could not fetch the job description"
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return "skill catalog unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "analysis timed out"
	default:
		return "analysis failed"
	}
}
