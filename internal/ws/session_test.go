package ws

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"career-match/internal/domain/matching"
	"career-match/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedAnalyzer blocks requests whose text is "slow" until their context is
// canceled and answers everything else immediately.
type scriptedAnalyzer struct {
	mu       sync.Mutex
	started  chan string
	canceled chan string
	calls    int
	err      error
}

func newScriptedAnalyzer() *scriptedAnalyzer {
	return &scriptedAnalyzer{started: make(chan string, 16), canceled: make(chan string, 16)}
}

func (a *scriptedAnalyzer) Analyze(ctx context.Context, _ uuid.UUID, in usecase.AnalysisInput) (matching.AnalysisResult, error) {
	a.mu.Lock()
	a.calls++
	err := a.err
	a.mu.Unlock()
	a.started <- in.RequestID

	if in.Text == "slow" {
		<-ctx.Done()
		a.canceled <- in.RequestID
		return matching.AnalysisResult{Score: 1}, nil
	}
	if err != nil {
		return matching.AnalysisResult{}, err
	}
	return matching.AnalysisResult{Score: 50, JobInfo: matching.JobInfo{Title: in.Text}}, nil
}

type eventSink struct {
	mu     sync.Mutex
	events []Event
	ch     chan Event
}

func newEventSink() *eventSink {
	return &eventSink{ch: make(chan Event, 16)}
}

func (s *eventSink) deliver(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
	s.ch <- ev
}

func (s *eventSink) next(t *testing.T) Event {
	t.Helper()
	select {
	case ev := <-s.ch:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestSession_LastCallWins(t *testing.T) {
	analyzer := newScriptedAnalyzer()
	sink := newEventSink()
	s := NewSession(analyzer, uuid.New(), sink.deliver, quietLogger())
	defer s.Close()

	s.Submit(Request{RequestID: "first", Text: "slow"})
	require.Equal(t, "first", <-analyzer.started)

	s.Submit(Request{RequestID: "second", Text: "Backend Engineer"})

	select {
	case id := <-analyzer.canceled:
		assert.Equal(t, "first", id)
	case <-time.After(2 * time.Second):
		t.Fatal("first analysis was not canceled")
	}

	ev := sink.next(t)
	assert.Equal(t, EventAnalysisResult, ev.Type)
	assert.Equal(t, "second", ev.RequestID)
	require.NotNil(t, ev.Result)
	assert.Equal(t, 50, ev.Result.Score)

	s.Close()
	sink.mu.Lock()
	defer sink.mu.Unlock()
	require.Len(t, sink.events, 1, "stale result must not be delivered")
}

func TestSession_ErrorEvent(t *testing.T) {
	analyzer := newScriptedAnalyzer()
	analyzer.err = usecase.ErrInvalidInput
	sink := newEventSink()
	s := NewSession(analyzer, uuid.New(), sink.deliver, quietLogger())
	defer s.Close()

	s.Submit(Request{RequestID: "r1"})
	ev := sink.next(t)
	assert.Equal(t, EventAnalysisError, ev.Type)
	assert.Equal(t, "text or url is required", ev.Error)
}

func TestSession_Rerun(t *testing.T) {
	analyzer := newScriptedAnalyzer()
	sink := newEventSink()
	s := NewSession(analyzer, uuid.New(), sink.deliver, quietLogger())
	defer s.Close()

	assert.False(t, s.Rerun(), "nothing to rerun yet")

	s.Submit(Request{RequestID: "r1", Text: "Data Engineer"})
	sink.next(t)

	require.True(t, s.Rerun())
	ev := sink.next(t)
	assert.Equal(t, "r1", ev.RequestID)
	assert.Equal(t, "Data Engineer", ev.Result.JobInfo.Title)
}

func TestSession_SubmitAfterClose(t *testing.T) {
	analyzer := newScriptedAnalyzer()
	s := NewSession(analyzer, uuid.New(), func(Event) {}, quietLogger())
	s.Close()

	s.Submit(Request{Text: "x"})
	analyzer.mu.Lock()
	defer analyzer.mu.Unlock()
	assert.Equal(t, 0, analyzer.calls)
}

func TestPublicError(t *testing.T) {
	assert.Equal(t, "could not fetch the job description", publicError(usecase.ErrFetchFailed))
	assert.Equal(t, "skill catalog unavailable", publicError(usecase.ErrCatalogUnavailable))
	assert.Equal(t, "analysis failed", publicError(errors.New("db down")))
}
