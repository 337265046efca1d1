package ws

import (
	"log"
	"net/http"

	"career-match/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *Hub
	analyzer Analyzer
	logger   *log.Logger
}

func NewHandler(hub *Hub, analyzer Analyzer, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{hub: hub, analyzer: analyzer, logger: logger}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleAnalysisWS upgrades an authenticated request into a live analysis
// session.
func (h *Handler) HandleAnalysisWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil || h.analyzer == nil {
		return fiber.ErrServiceUnavailable
	}
	candidateID, ok := c.Locals(middleware.CtxCandidateIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	fiberHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.Serve(w, r, candidateID)
	})
	return fiberHandler(c)
}

func (h *Handler) Serve(w http.ResponseWriter, r *http.Request, candidateID uuid.UUID) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("WS upgrade error | error=%v", err)
		return
	}

	client := NewClient(h.hub, conn, candidateID, h.analyzer, h.logger)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}
