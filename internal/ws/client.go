package ws

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 256 << 10
	sendBuffer     = 16
)

type Client struct {
	hub         *Hub
	conn        *websocket.Conn
	candidateID uuid.UUID
	session     *Session
	logger      *log.Logger

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, candidateID uuid.UUID, analyzer Analyzer, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	c := &Client{
		hub:         hub,
		conn:        conn,
		candidateID: candidateID,
		logger:      logger,
		send:        make(chan []byte, sendBuffer),
	}
	c.session = NewSession(analyzer, candidateID, c.enqueue, logger)
	return c
}

func (c *Client) CandidateID() uuid.UUID {
	return c.candidateID
}

func (c *Client) enqueue(ev Event) {
	b, err := json.Marshal(ev)
	if err != nil {
		c.logger.Printf("WS marshal error | type=%s error=%v", ev.Type, err)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.send <- b:
	default:
		c.logger.Printf("WS send dropped | candidate_id=%s type=%s reason=buffer_full", c.candidateID, ev.Type)
	}
}

func (c *Client) profileUpdated() {
	c.enqueue(newEvent(EventProfileUpdated, ""))
	c.session.Rerun()
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Client) ReadPump() {
	defer func() {
		c.session.Close()
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Printf("WS read error | candidate_id=%s error=%v", c.candidateID, err)
			}
			return
		}

		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			ev := newEvent(EventAnalysisError, "")
			ev.Error = "invalid message"
			c.enqueue(ev)
			continue
		}
		switch strings.ToLower(strings.TrimSpace(req.Type)) {
		case MessageAnalyze, "":
			c.session.Submit(req)
		default:
			ev := newEvent(EventAnalysisError, req.RequestID)
			ev.Error = "unknown message type"
			c.enqueue(ev)
		}
	}
}

func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
