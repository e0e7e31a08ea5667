package handler

import (
	"strconv"
	"strings"

	"resume-screener/internal/delivery/http/dto"
	"resume-screener/internal/delivery/http/middleware"
	"resume-screener/internal/domain/matching"
	"resume-screener/internal/pkg/response"
	"resume-screener/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc         usecase.MatchUsecase
	classifier matching.Classifier
}

func NewMatchHandler(uc usecase.MatchUsecase, cfg matching.Config) *MatchHandler {
	return &MatchHandler{
		uc:         uc,
		classifier: matching.NewClassifier(cfg.PotentialThreshold, cfg.ReviewThreshold),
	}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match", h.Match)
	r.Get("/classify", h.Classify)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := validateRequest(req); err != nil {
		return err
	}

	result, err := h.uc.Match(c.Context(), req.CVID, req.JobID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, result)
}

// Classify exposes the score band mapping directly. Scores live on the
// 0-100 scale the matcher produces.
func (h *MatchHandler) Classify(c fiber.Ctx) error {
	raw := strings.TrimSpace(c.Query("score"))
	if raw == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing score query parameter", nil, nil)
	}
	score, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Score must be a number", nil, err)
	}
	if score < 0 || score > 100 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Score must be between 0 and 100", nil, nil)
	}

	data := map[string]any{
		"score":    score,
		"category": h.classifier.Classify(score),
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
