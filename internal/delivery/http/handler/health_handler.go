package handler

import (
	"resume-screener/internal/database"
	"resume-screener/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	db database.DB
}

func NewHealthHandler(db database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]any{"database": "up"}
	if h.db == nil {
		data["database"] = "not configured"
	} else if err := h.db.Ping(c.Context()); err != nil {
		data["database"] = "down"
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
