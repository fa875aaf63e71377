package v1

import (
	"skillmatch-pro/internal/delivery/http/handler"
	"skillmatch-pro/internal/delivery/http/middleware"
	"skillmatch-pro/internal/pkg/jwt"
	"skillmatch-pro/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the wired services the v1 surface needs. Everything is
// constructed once at startup and passed down; nothing here is ambient.
type Deps struct {
	JWT        jwt.Service
	Auth       usecase.AuthUsecase
	Candidates usecase.CandidateUsecase
	Reviews    usecase.ReviewUsecase
	Jobs       usecase.JobUsecase
	Matching   usecase.MatchingUsecase
}

func Register(r fiber.Router, d Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(d.JWT)

	authHandler := handler.NewAuthHandler(d.Auth)
	candidateHandler := handler.NewCandidateHandler(d.Candidates, d.Reviews)
	jobHandler := handler.NewJobHandler(d.Jobs, d.Matching)
	matchHandler := handler.NewMatchHandler(d.Matching)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())

	candidatesGroup := protected.Group("/candidates")
	candidateHandler.RegisterRoutes(candidatesGroup)

	jobsGroup := protected.Group("/jobs")
	jobHandler.RegisterRoutes(jobsGroup)

	matchGroup := protected.Group("/match")
	matchHandler.RegisterRoutes(matchGroup)
}
