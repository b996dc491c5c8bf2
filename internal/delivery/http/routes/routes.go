package routes

import (
	"careerhub/internal/database"
	v1 "careerhub/internal/delivery/http/routes/v1"
	"careerhub/internal/pkg/response"
	"careerhub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	deps v1.Deps
	ws   *ws.Handler
	db   database.DB
}

func NewRegistry(deps v1.Deps, wsHandler *ws.Handler, db database.DB) *Registry {
	return &Registry{deps: deps, ws: wsHandler, db: db}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.handleHealth)

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)

	if r.ws != nil {
		app.Get("/ws/jobs", r.ws.HandleJobsWS)
	}
}

func (r *Registry) handleHealth(c fiber.Ctx) error {
	if r.db != nil {
		if err := r.db.Ping(c.Context()); err != nil {
			return response.Error(c, fiber.StatusServiceUnavailable, "database unreachable", nil)
		}
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
