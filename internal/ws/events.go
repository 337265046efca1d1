package ws

import (
	"time"

	"career-match/internal/delivery/http/dto"
)

const (
	MessageAnalyze = "analyze"

	EventAnalysisResult = "analysis_result"
	EventAnalysisError  = "analysis_error"
	EventProfileUpdated = "profile_updated"
)

// Request is what a client sends over the socket.
type Request struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id"`
	Text      string `json:"text"`
	URL       string `json:"url"`
}

type Event struct {
	Type      string                `json:"type"`
	RequestID string                `json:"request_id,omitempty"`
	Result    *dto.AnalysisResponse `json:"result,omitempty"`
	Error     string                `json:"error,omitempty"`
	Timestamp string                `json:"timestamp"`
}

func newEvent(typ, requestID string) Event {
	return Event{Type: typ, RequestID: requestID, Timestamp: time.Now().UTC().Format(time.RFC3339)}
}
