package handler

import (
	"context"
	"time"

	"career-match/internal/delivery/http/middleware"
	"career-match/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache interface{ Available() bool }
}

func NewHealthHandler(db Pinger, cache interface{ Available() bool }) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]string{"database": "disabled", "cache": "disabled"}

	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			return middleware.NewAppError(fiber.StatusServiceUnavailable, "", nil, err)
		}
		data["database"] = "ok"
	}
	if h.cache != nil {
		data["cache"] = "unavailable"
		if h.cache.Available() {
			data["cache"] = "ok"
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
