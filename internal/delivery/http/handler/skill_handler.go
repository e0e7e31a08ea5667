package handler

import (
	"resume-screener/internal/delivery/http/dto"
	"resume-screener/internal/delivery/http/middleware"
	"resume-screener/internal/pkg/response"
	"resume-screener/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/extract", h.Extract)
}

func (h *SkillHandler) Extract(c fiber.Ctx) error {
	var req dto.ExtractSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	res, err := h.uc.ExtractSkills(c.Context(), req.Text)
	if err != nil {
		return mapUsecaseError(err)
	}

	out := dto.ExtractSkillsResponse{
		Skills:     res.Skills,
		ByCategory: res.ByCategory,
		Count:      len(res.Skills),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
