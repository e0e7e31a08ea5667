package v1

import (
	"log"

	"resume-screener/internal/config"
	"resume-screener/internal/database"
	"resume-screener/internal/delivery/http/handler"
	"resume-screener/internal/delivery/http/middleware"
	"resume-screener/internal/pkg/jwt"
	"resume-screener/internal/repository"
	"resume-screener/internal/skill"
	"resume-screener/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.RankingCache, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.Auth.JWTAccessSecret, cfg.Auth.JWTAccessExpiry)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	dict := skill.NewDictionary()
	extractor := skill.NewExtractor(dict)
	engines := usecase.NewEngineFactory(cfg.Matching, dict, extractor)

	cvRepo := repository.NewPostgresCVRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	matchRepo := repository.NewPostgresMatchRepository(db)

	authUC := usecase.NewAuthUsecase(cfg.Auth, jwtSvc)
	cvUC := usecase.NewCVUsecase(cvRepo, extractor, cache)
	jobUC := usecase.NewJobUsecase(jobRepo)
	skillUC := usecase.NewSkillUsecase(extractor)
	matchUC := usecase.NewMatchUsecase(cvRepo, jobRepo, matchRepo, engines, logger)
	rankUC := usecase.NewRankUsecase(cvRepo, jobRepo, matchRepo, engines, cache, logger)

	authHandler := handler.NewAuthHandler(authUC)
	cvHandler := handler.NewCVHandler(cvUC)
	jobHandler := handler.NewJobHandler(jobUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	matchHandler := handler.NewMatchHandler(matchUC, cfg.Matching)
	rankHandler := handler.NewRankHandler(rankUC)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	cvHandler.RegisterRoutes(protected.Group("/cvs"))
	jobHandler.RegisterRoutes(protected.Group("/jobs"))
	skillHandler.RegisterRoutes(protected.Group("/skills"))
	matchHandler.RegisterRoutes(protected)
	rankHandler.RegisterRoutes(protected)
}
