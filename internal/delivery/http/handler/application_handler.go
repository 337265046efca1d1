package handler

import (
	"time"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/domain/tracker"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.TrackerUsecase
}

type createApplicationRequest struct {
	JobID    *uuid.UUID `json:"job_id"`
	Title    string     `json:"title"`
	Company  string     `json:"company"`
	Location string     `json:"location"`
	Salary   string     `json:"salary"`
}

type interviewRequest struct {
	At          *time.Time `json:"at"`
	Time        string     `json:"time"`
	Mode        string     `json:"mode"`
	MeetingLink string     `json:"meeting_link"`
	Interviewer string     `json:"interviewer"`
}

type updateApplicationRequest struct {
	Status    string            `json:"status"`
	Interview *interviewRequest `json:"interview"`
}

func NewApplicationHandler(uc usecase.TrackerUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/applications")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Patch("/:id", h.Update)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}

	list, err := h.uc.List(c.Context(), candidateID, c.Query("status"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(list.Items, list.Counts))
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}

	var req createApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.Create(c.Context(), candidateID, usecase.CreateApplicationInput{
		PostingID: req.JobID,
		Title:     req.Title,
		Company:   req.Company,
		Location:  req.Location,
		Salary:    req.Salary,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "created", dto.NewApplicationResponse(created))
}

func (h *ApplicationHandler) Update(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	in := usecase.UpdateApplicationInput{Status: req.Status}
	if req.Interview != nil {
		in.Interview = &tracker.Interview{
			At:          req.Interview.At,
			TimeLabel:   req.Interview.Time,
			Mode:        req.Interview.Mode,
			MeetingLink: req.Interview.MeetingLink,
			Interviewer: req.Interview.Interviewer,
		}
	}

	updated, err := h.uc.Update(c.Context(), candidateID, id, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(updated))
}
