package routes

import (
	"log"

	"resume-screener/internal/config"
	"resume-screener/internal/database"
	v1 "resume-screener/internal/delivery/http/routes/v1"
	"resume-screener/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, cache usecase.RankingCache, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, cache, logger)
}
