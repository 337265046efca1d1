package handler

import (
	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/pkg/response"
	"career-match/internal/repository"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CandidateHandler struct {
	uc usecase.CandidateUsecase
}

type registerCandidateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewCandidateHandler(uc usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

// RegisterPublicRoutes mounts the unauthenticated registration endpoint.
func (h *CandidateHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/candidates", h.Register)
}

func (h *CandidateHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/me", h.Me)
}

func (h *CandidateHandler) Register(c fiber.Ctx) error {
	var req registerCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	session, err := h.uc.Register(c.Context(), usecase.RegisterCandidateInput{Name: req.Name, Email: req.Email})
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.CandidateSessionResponse{
		Candidate:   toCandidateResponse(session.Candidate),
		AccessToken: session.AccessToken,
		ExpiresAt:   session.ExpiresAt,
	}
	return response.Success(c, fiber.StatusCreated, "created", res)
}

func (h *CandidateHandler) Me(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}

	cand, err := h.uc.Get(c.Context(), candidateID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toCandidateResponse(cand))
}

func toCandidateResponse(c repository.Candidate) dto.CandidateResponse {
	return dto.CandidateResponse{ID: c.ID, Name: c.Name, Email: c.Email, CreatedAt: c.CreatedAt}
}
