package handler

import (
	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type candidateSkillRequest struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	Proficiency     int    `json:"proficiency"`
	YearsExperience int    `json:"years_experience"`
}

type replaceSkillsRequest struct {
	Skills []candidateSkillRequest `json:"skills"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Add)
	grp.Put("/", h.Replace)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ProfileHandler) List(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListSkills(c.Context(), candidateID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toCandidateSkillResponses(items))
}

func (h *ProfileHandler) Add(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}

	var req candidateSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.AddSkill(c.Context(), candidateID, req.input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "created", toCandidateSkillResponse(created))
}

// Replace saves the whole profile in one call.
func (h *ProfileHandler) Replace(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}

	var req replaceSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := make([]usecase.ProfileSkillInput, 0, len(req.Skills))
	for _, s := range req.Skills {
		in = append(in, s.input())
	}
	saved, err := h.uc.ReplaceSkills(c.Context(), candidateID, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toCandidateSkillResponses(saved))
}

func (h *ProfileHandler) Update(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req candidateSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateSkill(c.Context(), candidateID, id, req.input())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, toCandidateSkillResponse(updated))
}

func (h *ProfileHandler) Delete(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSkill(c.Context(), candidateID, id); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (r candidateSkillRequest) input() usecase.ProfileSkillInput {
	return usecase.ProfileSkillInput{
		Name:            r.Name,
		Category:        r.Category,
		Proficiency:     r.Proficiency,
		YearsExperience: r.YearsExperience,
	}
}

func toCandidateSkillResponse(it usecase.ProfileSkillItem) dto.CandidateSkillResponse {
	return dto.CandidateSkillResponse{
		ID:              it.ID,
		Name:            it.Name,
		Category:        string(it.Category),
		Proficiency:     it.Proficiency,
		YearsExperience: it.YearsExperience,
	}
}

func toCandidateSkillResponses(items []usecase.ProfileSkillItem) []dto.CandidateSkillResponse {
	out := make([]dto.CandidateSkillResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toCandidateSkillResponse(it))
	}
	return out
}
