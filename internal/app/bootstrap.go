package app

import (
	"context"
	"fmt"
	"strings"

	"career-match/internal/config"
	"career-match/internal/delivery/http/handler"
	"career-match/internal/delivery/http/middleware"
	"career-match/internal/delivery/http/routes"
	v1 "career-match/internal/delivery/http/routes/v1"
	"career-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container, the HTTP app and the websocket hub. The
// returned cleanup stops the hub and releases the container.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg, nil)
	if err != nil {
		return nil, nil, err
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	go c.Hub.Run(hubCtx)

	app := New(c)
	cleanup := func() error {
		stopHub()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	health := handler.NewHealthHandler(c.DB, c.Cache)
	routes.NewRegistry(health, v1.Handlers{
		Auth:         middleware.NewAuthMiddleware(c.JWT),
		Catalog:      handler.NewCatalogHandler(c.Catalog),
		Candidates:   handler.NewCandidateHandler(c.Candidates),
		Profile:      handler.NewProfileHandler(c.Profiles),
		Analysis:     handler.NewAnalysisHandler(c.Analysis),
		Postings:     handler.NewPostingHandler(c.Postings),
		Applications: handler.NewApplicationHandler(c.Tracker),
		LiveAnalysis: ws.NewHandler(c.Hub, c.Analysis, c.Logger),
	}).Register(app)
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
