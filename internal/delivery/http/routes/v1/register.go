package v1

import (
	"log"

	"job-board/internal/config"
	"job-board/internal/database"
	"job-board/internal/delivery/http/handler"
	"job-board/internal/delivery/http/middleware"
	"job-board/internal/pkg/jwt"
	"job-board/internal/repository"
	"job-board/internal/usecase"
	"job-board/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.MatchCache, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(db)
	profileRepo := repository.NewPostgresProfileRepository(db)
	skillRepo := repository.NewPostgresSkillRepository(db)
	statusRepo := repository.NewPostgresStatusRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	appRepo := repository.NewPostgresApplicationRepository(db)

	var notifier usecase.StatusNotifier
	if hub != nil {
		notifier = hub
	}

	authUC := usecase.NewAuthUsecase(userRepo, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profileRepo)
	skillUC := usecase.NewSkillUsecase(skillRepo, profileRepo, cache)
	metadataUC := usecase.NewMetadataUsecase(skillRepo, statusRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, profileRepo)
	appUC := usecase.NewApplicationUsecase(appRepo, jobRepo, profileRepo, cache, notifier)
	matchUC := usecase.NewMatchingUsecase(jobRepo, skillRepo, cache, logger)

	authHandler := handler.NewAuthHandler(authUC)
	userHandler := handler.NewUserHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	skillHandler := handler.NewSkillHandler(skillUC)
	metadataHandler := handler.NewMetadataHandler(metadataUC)
	jobHandler := handler.NewJobHandler(jobUC, authMw)
	appHandler := handler.NewApplicationHandler(appUC, authMw)
	matchHandler := handler.NewMatchingHandler(matchUC)
	wsHandler := ws.NewHandler(hub, logger)

	authHandler.RegisterRoutes(r.Group("/auth"))
	metadataHandler.RegisterRoutes(r)

	protected := r.Group("", authMw.Middleware())

	userHandler.RegisterRoutes(protected.Group("/users"))
	profileHandler.RegisterRoutes(protected.Group("/profiles"))
	skillHandler.RegisterRoutes(protected.Group("/profiles", authMw.RequireApplicant()))
	jobHandler.RegisterRoutes(protected.Group("/jobs"))
	appHandler.RegisterRoutes(protected.Group("/applications"))
	matchHandler.RegisterRoutes(protected.Group("/matches", authMw.RequireApplicant()))

	protected.Get("/ws", func(c fiber.Ctx) error {
		userID, ok := middleware.UserIDFromCtx(c)
		if !ok {
			return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		return wsHandler.Handle(c, userID)
	})
}
