package app

import (
	"fmt"
	"log"
	"strings"

	"careerhub/internal/config"
	"careerhub/internal/delivery/http/handler"
	"careerhub/internal/delivery/http/middleware"
	"careerhub/internal/delivery/http/routes"
	v1 "careerhub/internal/delivery/http/routes/v1"
	"careerhub/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c.Logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap builds the container and the HTTP app; the returned cleanup
// releases the container's connections.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	app := New(c)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(c.JWT)

	jobsHandler := handler.NewJobsHandler(c.SearchUC, c.JobUC)
	companyJobsHandler := handler.NewCompanyJobsHandler(c.JobUC, c.SearchUC)

	deps := v1.Deps{
		Auth:        handler.NewAuthHandler(c.AuthUC),
		Jobs:        jobsHandler,
		CompanyJobs: companyJobsHandler,
		Profiles:    handler.NewProfileHandler(c.ProfileUC),
		Resume:      handler.NewResumeHandler(c.ResumeUC),
		AuthMW:      authMw,
	}

	wsHandler := ws.NewHandler(c.Hub, c.Logger)
	routes.NewRegistry(deps, wsHandler, c.DB).Register(app)
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
