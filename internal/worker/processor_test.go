package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
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

type stubAnalyzer struct {
	calls []usecase.AnalysisInput
	err   error
	score int
}

func (s *stubAnalyzer) Analyze(_ context.Context, _ uuid.UUID, in usecase.AnalysisInput) (matching.AnalysisResult, error) {
	s.calls = append(s.calls, in)
	if s.err != nil {
		return matching.AnalysisResult{}, s.err
	}
	return matching.AnalysisResult{Score: s.score}, nil
}

type memClaims struct {
	mu        sync.Mutex
	available bool
	keys      map[string]string
}

func newClaims() *memClaims {
	return &memClaims{available: true, keys: map[string]string{}}
}

func (m *memClaims) Available() bool { return m.available }

func (m *memClaims) SetIfNotExists(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.keys[key]; ok {
		return false, nil
	}
	m.keys[key] = value
	return true, nil
}

func (m *memClaims) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.keys, key)
	return nil
}

type recordingPublisher struct {
	updates []StatusUpdate
	keys    []string
}

func (r *recordingPublisher) Publish(_ context.Context, key string, body []byte) error {
	var u StatusUpdate
	if err := json.Unmarshal(body, &u); err != nil {
		return err
	}
	r.keys = append(r.keys, key)
	r.updates = append(r.updates, u)
	return nil
}

func (r *recordingPublisher) statuses() []string {
	out := make([]string, 0, len(r.updates))
	for _, u := range r.updates {
		out = append(out, u.Status)
	}
	return out
}

func jobBody(t *testing.T, job AnalysisJob) []byte {
	t.Helper()
	b, err := json.Marshal(job)
	require.NoError(t, err)
	return b
}

func newTestProcessor(a Analyzer, c Claimer, p Publisher) *Processor {
	return NewProcessor(a, c, p, log.New(io.Discard, "", 0))
}

func TestProcess_Success(t *testing.T) {
	analyzer := &stubAnalyzer{score: 70}
	pub := &recordingPublisher{}
	proc := newTestProcessor(analyzer, newClaims(), pub)

	candidate := uuid.New()
	d := proc.Process(context.Background(), jobBody(t, AnalysisJob{RequestID: "r-1", CandidateID: candidate, Text: "React developer"}), false)

	assert.Equal(t, Ack, d)
	require.Len(t, analyzer.calls, 1)
	assert.Equal(t, usecase.AnalysisInput{Text: "React developer", RequestID: "r-1", Source: "queue"}, analyzer.calls[0])
	assert.Equal(t, []string{"processing", "completed"}, pub.statuses())
	require.NotNil(t, pub.updates[1].Score)
	assert.Equal(t, 70, *pub.updates[1].Score)
	assert.Equal(t, candidate, pub.updates[1].CandidateID)
	assert.Equal(t, "analysis.r-1", pub.keys[1])
}

func TestProcess_DuplicateRequestIsAcked(t *testing.T) {
	analyzer := &stubAnalyzer{}
	proc := newTestProcessor(analyzer, newClaims(), nil)
	body := jobBody(t, AnalysisJob{RequestID: "r-2", CandidateID: uuid.New(), Text: "Go"})

	assert.Equal(t, Ack, proc.Process(context.Background(), body, false))
	assert.Equal(t, Ack, proc.Process(context.Background(), body, true))
	assert.Len(t, analyzer.calls, 1)
}

func TestProcess_ClaimsSkippedWhenCacheUnavailable(t *testing.T) {
	analyzer := &stubAnalyzer{}
	claims := newClaims()
	claims.available = false
	proc := newTestProcessor(analyzer, claims, nil)
	body := jobBody(t, AnalysisJob{RequestID: "r-3", CandidateID: uuid.New(), Text: "Go"})

	proc.Process(context.Background(), body, false)
	proc.Process(context.Background(), body, false)
	assert.Len(t, analyzer.calls, 2)
}

func TestProcess_InvalidMessages(t *testing.T) {
	cases := map[string][]byte{
		"not json":          []byte("{"),
		"missing candidate": []byte(`{"request_id":"x","text":"React"}`),
		"missing text":      []byte(fmt.Sprintf(`{"candidate_id":%q}`, uuid.NewString())),
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			analyzer := &stubAnalyzer{}
			proc := newTestProcessor(analyzer, newClaims(), &recordingPublisher{})
			assert.Equal(t, Drop, proc.Process(context.Background(), body, false))
			assert.Empty(t, analyzer.calls)
		})
	}
}

func TestProcess_ErrorDecisions(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		redelivered bool
		want        Decision
	}{
		{"fetch failed", fmt.Errorf("%w: 404", usecase.ErrFetchFailed), false, Drop},
		{"unauthorized", usecase.ErrUnauthorized, false, Drop},
		{"catalog down first try", usecase.ErrCatalogUnavailable, false, Requeue},
		{"catalog down redelivered", usecase.ErrCatalogUnavailable, true, Drop},
		{"shutdown", context.Canceled, true, Requeue},
		{"internal", errors.New("db down"), false, Requeue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims := newClaims()
			pub := &recordingPublisher{}
			proc := newTestProcessor(&stubAnalyzer{err: tc.err}, claims, pub)

			d := proc.Process(context.Background(), jobBody(t, AnalysisJob{RequestID: "r", CandidateID: uuid.New(), URL: "https://jobs.example.com/1"}), tc.redelivered)
			assert.Equal(t, tc.want, d)
			assert.Equal(t, []string{"processing", "failed"}, pub.statuses())

			_, claimed := claims.keys[claimKey("r")]
			assert.Equal(t, tc.want != Requeue, claimed, "requeued jobs release their claim")
		})
	}
}

func TestProcess_GeneratesRequestID(t *testing.T) {
	analyzer := &stubAnalyzer{}
	proc := newTestProcessor(analyzer, nil, nil)

	assert.Equal(t, Ack, proc.Process(context.Background(), jobBody(t, AnalysisJob{CandidateID: uuid.New(), Text: "SQL"}), false))
	require.Len(t, analyzer.calls, 1)
	_, err := uuid.Parse(analyzer.calls[0].RequestID)
	assert.NoError(t, err)
}
