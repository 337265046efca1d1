package handler

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"career-match/internal/delivery/http/dto"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/export"
	"career-match/internal/pkg/response"
	"career-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

type analysisRequest struct {
	Text      string `json:"text"`
	URL       string `json:"url"`
	RequestID string `json:"request_id"`
}

type analysisRecordResponse struct {
	ID        string `json:"id"`
	RequestID string `json:"request_id,omitempty"`
	Source    string `json:"source"`
	Score     int    `json:"score"`
	CreatedAt string `json:"created_at"`
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/me/analysis")
	grp.Post("/", h.Analyze)
	grp.Post("/export", h.Export)
	grp.Get("/history", h.History)
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}
	in, err := bindAnalysisRequest(c)
	if err != nil {
		return err
	}

	res, err := h.uc.Analyze(c.Context(), candidateID, in)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAnalysisResponse(res))
}

// Export runs the analysis and returns it as an xlsx workbook.
func (h *AnalysisHandler) Export(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}
	in, err := bindAnalysisRequest(c)
	if err != nil {
		return err
	}

	res, err := h.uc.Analyze(c.Context(), candidateID, in)
	if err != nil {
		return mapUsecaseError(err)
	}

	var buf bytes.Buffer
	now := time.Now().UTC()
	if err := export.WriteAnalysisWorkbook(&buf, res, now); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="skill-gap-%s.xlsx"`, now.Format("20060102-150405")))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (h *AnalysisHandler) History(c fiber.Ctx) error {
	candidateID, err := candidateIDFromCtx(c)
	if err != nil {
		return err
	}
	limit, err := parseQueryIntStrict(c, "limit", 20)
	if err != nil || limit < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, err := h.uc.History(c.Context(), candidateID, limit)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]analysisRecordResponse, 0, len(items))
	for _, it := range items {
		out = append(out, analysisRecordResponse{
			ID:        it.ID.String(),
			RequestID: it.RequestID,
			Source:    it.Source,
			Score:     it.Score,
			CreatedAt: it.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func bindAnalysisRequest(c fiber.Ctx) (usecase.AnalysisInput, error) {
	var req analysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return usecase.AnalysisInput{}, middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	return usecase.AnalysisInput{Text: req.Text, URL: req.URL, RequestID: req.RequestID}, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}
