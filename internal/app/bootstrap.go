package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"skillmatch-pro/internal/config"
	dbpostgres "skillmatch-pro/internal/database/postgres"
	"skillmatch-pro/internal/delivery/http/middleware"
	"skillmatch-pro/internal/delivery/http/routes"
	v1 "skillmatch-pro/internal/delivery/http/routes/v1"
	"skillmatch-pro/internal/infrastructure/cache"
	"skillmatch-pro/internal/matching"
	"skillmatch-pro/internal/matching/scoring"
	"skillmatch-pro/internal/pkg/jwt"
	"skillmatch-pro/internal/repository"
	"skillmatch-pro/internal/usecase"
	"skillmatch-pro/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

// Bootstrap wires the whole process: storage, caches, the scoring
// client, the websocket hub and the HTTP surface. The recommendation
// cache is created here once and handed to the orchestrator; it lives
// for the process lifetime and starts empty.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	rdb := cache.NewRedis(logger)

	hub := ws.NewHub(logger)
	go hub.Run()
	ws.SetDefaultHub(hub)

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	userRepo := repository.NewPostgresUserRepository(db)
	candidateRepo := repository.NewPostgresCandidateRepository(db)
	jobRepo := repository.NewPostgresJobRepository(db)
	reviewRepo := repository.NewPostgresReviewRepository(db)

	scorer := scoring.NewHTTPClient(cfg.Matching.ScoringBaseURL, cfg.Matching.ScoringTimeout, logger)
	recCache := matching.NewRecommendationCache(cfg.Matching.CacheTTL)

	deps := v1.Deps{
		JWT:        jwtSvc,
		Auth:       usecase.NewAuthUsecase(userRepo, candidateRepo, jwtSvc, logger),
		Candidates: usecase.NewCandidateUsecase(candidateRepo, reviewRepo),
		Reviews:    usecase.NewReviewUsecase(reviewRepo, candidateRepo),
		Jobs:       usecase.NewJobUsecase(jobRepo, rdb, logger),
		Matching:   usecase.NewMatchingUsecase(candidateRepo, jobRepo, scorer, recCache, logger),
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware().Middleware())

	routes.NewRegistry(deps, ws.NewHandler(hub, logger)).Register(f)

	cleanup := func() error {
		var firstErr error
		if err := rdb.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := db.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		return firstErr
	}

	return &App{Fiber: f}, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
