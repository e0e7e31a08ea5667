package handler

import (
	"strconv"
	"strings"

	"resume-screener/internal/delivery/http/dto"
	"resume-screener/internal/delivery/http/middleware"
	"resume-screener/internal/pkg/response"
	"resume-screener/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.CreateJob)
	r.Get("/", h.ListJobs)
}

func (h *JobHandler) CreateJob(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	posting, err := h.uc.CreateJob(c.Context(), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "job created", posting)
}

func (h *JobHandler) ListJobs(c fiber.Ctx) error {
	params := usecase.JobListParams{}

	var err error
	if params.Limit, err = queryInt(c, "limit"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if params.Offset, err = queryInt(c, "offset"); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	postings, err := h.uc.ListJobs(c.Context(), params)
	if err != nil {
		return mapUsecaseError(err)
	}

	data := map[string]any{
		"jobs":  postings,
		"count": len(postings),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}

func queryInt(c fiber.Ctx, key string) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
