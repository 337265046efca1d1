package v1

import (
	"career-match/internal/delivery/http/handler"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Auth         *middleware.AuthMiddleware
	Catalog      *handler.CatalogHandler
	Candidates   *handler.CandidateHandler
	Profile      *handler.ProfileHandler
	Analysis     *handler.AnalysisHandler
	Postings     *handler.PostingHandler
	Applications *handler.ApplicationHandler
	LiveAnalysis *ws.Handler
}

func Register(r fiber.Router, h Handlers) {
	if r == nil {
		return
	}

	if h.Catalog != nil {
		h.Catalog.RegisterRoutes(r)
	}
	if h.Candidates != nil {
		h.Candidates.RegisterPublicRoutes(r)
	}
	if h.Auth == nil {
		return
	}

	protected := r.Group("", h.Auth.Middleware())
	if h.Candidates != nil {
		h.Candidates.RegisterRoutes(protected)
	}
	if h.Profile != nil {
		h.Profile.RegisterRoutes(protected)
	}
	if h.LiveAnalysis != nil {
		protected.Get("/me/analysis/ws", h.LiveAnalysis.HandleAnalysisWS)
	}
	if h.Analysis != nil {
		h.Analysis.RegisterRoutes(protected)
	}
	if h.Postings != nil {
		h.Postings.RegisterRoutes(protected)
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(protected)
	}
}
