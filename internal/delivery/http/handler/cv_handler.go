package handler

import (
	"resume-screener/internal/delivery/http/dto"
	"resume-screener/internal/delivery/http/middleware"
	"resume-screener/internal/pkg/response"
	"resume-screener/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CVHandler struct {
	uc usecase.CVUsecase
}

func NewCVHandler(uc usecase.CVUsecase) *CVHandler {
	return &CVHandler{uc: uc}
}

func (h *CVHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/", h.SaveCV)
	r.Get("/:cv_id", h.GetCV)
}

func (h *CVHandler) SaveCV(c fiber.Ctx) error {
	var req dto.SaveCVRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	profile, err := h.uc.SaveCV(c.Context(), req.ToDomain())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "cv saved", profile)
}

func (h *CVHandler) GetCV(c fiber.Ctx) error {
	profile, err := h.uc.GetCV(c.Context(), c.Params("cv_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, profile)
}
