package app

import (
	"fmt"
	"log"
	"net/url"
	"strings"

	"skillmatrix/internal/config"
	"skillmatrix/internal/delivery/http/handler"
	"skillmatrix/internal/delivery/http/middleware"
	"skillmatrix/internal/delivery/http/routes"
	"skillmatrix/internal/readmodel"
	"skillmatrix/internal/usecase"
	"skillmatrix/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New wires the HTTP surface over an existing container.
func New(c *Container) *App {
	cfg := c.Config
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	registerGlobalMiddleware(f, c)

	asm := readmodel.NewAssembler(cfg.App.BaseURL)
	opts := []usecase.Option{
		usecase.WithCache(c.Cache, cfg.Redis.TTL),
		usecase.WithEvents(ws.NewPublisher(c.Hub)),
		usecase.WithMetrics(c.Metrics),
		usecase.WithLogger(c.Logger),
	}

	routes.NewRegistry(MountPath(cfg.App.BaseURL), routes.Handlers{
		Root:   handler.NewRootHandler(asm),
		People: handler.NewPeopleHandler(usecase.NewPeopleUsecase(c.Store, asm, opts...)),
		Skills: handler.NewSkillHandler(usecase.NewSkillUsecase(c.Store, asm, opts...)),
		PersonSkills: handler.NewPersonSkillHandler(
			usecase.NewPersonSkillUsecase(c.Store, asm, opts...),
			usecase.NewVerificationUsecase(c.Store, asm, opts...),
		),
		Health:  handler.NewHealthHandler(c.Store, c.Cache),
		Changes: ws.NewHandler(c.Hub, cfg.App.CORSOrigins, c.Logger).HandleChangesWS,
		Metrics: promhttp.HandlerFor(c.Registry, promhttp.HandlerOpts{}),
	}).Register(f)

	return &App{Fiber: f, Container: c}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return New(c), c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(c.Logger, c.Metrics).Middleware())
	app.Use(middleware.NewErrorMiddleware(c.Logger).Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  c.Config.App.CORSOrigins,
		AllowMethods:  []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodOptions},
		AllowHeaders:  []string{fiber.HeaderOrigin, fiber.HeaderContentType, fiber.HeaderAccept, middleware.HeaderRequestID},
		ExposeHeaders: []string{fiber.HeaderLocation, middleware.HeaderRequestID},
	}))
}

// MountPath returns the path component of the API base URL, which may be
// either a bare path ("/api") or an absolute URL ("https://host/api").
func MountPath(baseURL string) string {
	base := strings.TrimSpace(baseURL)
	if u, err := url.Parse(base); err == nil && u.Scheme != "" {
		base = u.Path
	}
	base = strings.TrimRight(base, "/")
	if base != "" && !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return base
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
