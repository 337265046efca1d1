package handler

import (
	"strconv"
	"strings"
	"time"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/domain/matching"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PostingHandler struct {
	uc usecase.PostingUsecase
}

type requiredSkillRequest struct {
	Name          string `json:"name"`
	RequiredLevel int    `json:"required_level"`
	Category      string `json:"category"`
}

type createPostingRequest struct {
	Title          string                 `json:"title"`
	Company        string                 `json:"company"`
	Location       string                 `json:"location"`
	LocationType   string                 `json:"location_type"`
	Salary         string                 `json:"salary"`
	Experience     string                 `json:"experience"`
	Posted         string                 `json:"posted"`
	PostedAt       *time.Time             `json:"posted_at"`
	Description    string                 `json:"description"`
	Applicants     int                    `json:"applicants"`
	CompanySize    string                 `json:"company_size"`
	RequiredSkills []requiredSkillRequest `json:"required_skills"`
}

func NewPostingHandler(uc usecase.PostingUsecase) *PostingHandler {
	return &PostingHandler{uc: uc}
}

func (h *PostingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/jobs")
	grp.Get("/", h.Feed)
	grp.Get("/:job_id/match", h.Match)
	grp.Post("/:job_id/bookmark", h.ToggleBookmark)

	r.Post("/jobs", h.Create)
}

func (h *PostingHandler) Feed(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}

	limit, err := parseQueryIntStrict(c, "limit", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	offset, err := parseQueryIntStrict(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	bookmarked := false
	if s := strings.TrimSpace(c.Query("bookmarked")); s != "" {
		bookmarked, err = strconv.ParseBool(s)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
	}

	items, err := h.uc.Feed(c.Context(), candidateID, usecase.FeedParams{
		Query:          c.Query("q"),
		LocationType:   c.Query("location_type"),
		Sort:           c.Query("sort"),
		BookmarkedOnly: bookmarked,
		Limit:          limit,
		Offset:         offset,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.PostingResponse, 0, len(items))
	for _, p := range items {
		out = append(out, dto.NewPostingResponse(p, false))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *PostingHandler) Match(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}
	postingID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	m, err := h.uc.Match(c.Context(), candidateID, postingID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingMatchResponse(m.Posting, m.Score))
}

func (h *PostingHandler) ToggleBookmark(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}
	postingID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	on, err := h.uc.ToggleBookmark(c.Context(), candidateID, postingID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"job_id": postingID, "bookmarked": on})
}

func (h *PostingHandler) Create(c fiber.Ctx) error {
	var req createPostingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills := make([]matching.RequiredSkill, 0, len(req.RequiredSkills))
	for _, s := range req.RequiredSkills {
		category, ok := matching.ParseCategory(s.Category)
		if !ok {
			category = matching.CategoryTechnical
		}
		skills = append(skills, matching.RequiredSkill{Name: s.Name, RequiredLevel: s.RequiredLevel, Category: category})
	}

	created, err := h.uc.CreatePosting(c.Context(), usecase.CreatePostingInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		LocationType:   req.LocationType,
		Salary:         req.Salary,
		Experience:     req.Experience,
		PostedLabel:    req.Posted,
		PostedAt:       req.PostedAt,
		Description:    req.Description,
		Applicants:     req.Applicants,
		CompanySize:    req.CompanySize,
		RequiredSkills: skills,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "created", dto.NewPostingResponse(created, true))
}
