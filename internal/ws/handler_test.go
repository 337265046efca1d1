package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialTestServer(t *testing.T, h *Handler, candidateID uuid.UUID) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.Serve(w, r, candidateID)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var ev Event
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestHandler_AnalyzeAndProfileUpdate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(quietLogger())
	go hub.Run(ctx)

	candidateID := uuid.New()
	h := NewHandler(hub, newScriptedAnalyzer(), quietLogger())
	conn := dialTestServer(t, h, candidateID)

	require.NoError(t, conn.WriteJSON(Request{Type: MessageAnalyze, RequestID: "r1", Text: "Frontend Developer"}))
	ev := readEvent(t, conn)
	assert.Equal(t, EventAnalysisResult, ev.Type)
	assert.Equal(t, "r1", ev.RequestID)
	require.NotNil(t, ev.Result)
	assert.Equal(t, 50, ev.Result.Score)

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.NotifyProfileUpdated(uuid.New())
	hub.NotifyProfileUpdated(candidateID)

	ev = readEvent(t, conn)
	assert.Equal(t, EventProfileUpdated, ev.Type)
	ev = readEvent(t, conn)
	assert.Equal(t, EventAnalysisResult, ev.Type)
	assert.Equal(t, "r1", ev.RequestID)
}

func TestHandler_InvalidMessages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(quietLogger())
	go hub.Run(ctx)

	conn := dialTestServer(t, NewHandler(hub, newScriptedAnalyzer(), quietLogger()), uuid.New())

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	ev := readEvent(t, conn)
	assert.Equal(t, EventAnalysisError, ev.Type)
	assert.Equal(t, "invalid message", ev.Error)

	require.NoError(t, conn.WriteJSON(Request{Type: "subscribe", RequestID: "x"}))
	ev = readEvent(t, conn)
	assert.Equal(t, "unknown message type", ev.Error)
}

func TestHandler_DisconnectUnregisters(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(quietLogger())
	go hub.Run(ctx)

	conn := dialTestServer(t, NewHandler(hub, newScriptedAnalyzer(), quietLogger()), uuid.New())
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}
