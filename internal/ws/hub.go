package ws

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub tracks live connections per candidate and fans out profile updates.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	profile    chan uuid.UUID
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		profile:    make(chan uuid.UUID, 256),
		logger:     logger,
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mutex.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				c.closeSend()
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Printf("WS connected | candidate_id=%s total_clients=%d", client.candidateID, total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.logger.Printf("WS disconnected | candidate_id=%s total_clients=%d", client.candidateID, total)

		case candidateID := <-h.profile:
			h.mutex.RLock()
			targets := make([]*Client, 0, 1)
			for c := range h.clients {
				if c.candidateID == candidateID {
					targets = append(targets, c)
				}
			}
			h.mutex.RUnlock()

			for _, c := range targets {
				c.profileUpdated()
			}
			if len(targets) > 0 {
				h.logger.Printf("WS profile updated | candidate_id=%s clients=%d", candidateID, len(targets))
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// NotifyProfileUpdated implements usecase.ProfileNotifier. It never blocks the
// caller.
func (h *Hub) NotifyProfileUpdated(candidateID uuid.UUID) {
	if h == nil {
		return
	}
	select {
	case h.profile <- candidateID:
	default:
		h.logger.Printf("WS profile notification dropped | candidate_id=%s reason=buffer_full", candidateID)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
