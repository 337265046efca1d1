package handler

import (
	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

type addSkillRequest struct {
	Name          string `json:"name"`
	Category      string `json:"category"`
	RequiredLevel int    `json:"required_level"`
}

func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/skills", h.ListSkills)
	r.Post("/skills", h.AddSkill)
	r.Get("/courses", h.ListCourses)
}

func (h *CatalogHandler) ListSkills(c fiber.Ctx) error {
	items, err := h.uc.ListSkills(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.SkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.SkillResponse{ID: it.ID, Name: it.Name, Category: it.Category, RequiredLevel: it.RequiredLevel})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *CatalogHandler) AddSkill(c fiber.Ctx) error {
	var req addSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddSkill(c.Context(), usecase.AddSkillInput{
		Name:          req.Name,
		Category:      req.Category,
		RequiredLevel: req.RequiredLevel,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	res := dto.SkillResponse{ID: created.ID, Name: created.Name, Category: created.Category, RequiredLevel: created.RequiredLevel}
	return response.Success(c, fiber.StatusCreated, "created", res)
}

func (h *CatalogHandler) ListCourses(c fiber.Ctx) error {
	items, err := h.uc.Courses(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResourceResponses(items))
}
