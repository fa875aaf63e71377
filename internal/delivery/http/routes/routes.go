package routes

import (
	"skillmatch-pro/internal/delivery/http/handler"
	v1 "skillmatch-pro/internal/delivery/http/routes/v1"
	"skillmatch-pro/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health *handler.HealthHandler
	wsh    *ws.Handler
	deps   v1.Deps
}

func NewRegistry(deps v1.Deps, wsh *ws.Handler) *Registry {
	return &Registry{health: handler.NewHealthHandler(), wsh: wsh, deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	if r.wsh != nil {
		app.Get("/ws", r.wsh.HandleMatchWS)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)
}
