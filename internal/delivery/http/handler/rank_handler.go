package handler

import (
	"resume-screener/internal/delivery/http/dto"
	"resume-screener/internal/delivery/http/middleware"
	"resume-screener/internal/pkg/response"
	"resume-screener/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RankHandler struct {
	uc usecase.RankUsecase
}

func NewRankHandler(uc usecase.RankUsecase) *RankHandler {
	return &RankHandler{uc: uc}
}

func (h *RankHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/rank", h.Rank)
}

func (h *RankHandler) Rank(c fiber.Ctx) error {
	var req dto.RankRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	ranking, err := h.uc.Rank(c.Context(), usecase.RankParams{
		CVID:   req.CVID,
		JobIDs: req.JobIDs,
		TopN:   req.TopN,
	})
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, ranking)
}
