package routes

import (
	"net/http"

	"skillmatrix/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
)

// Handlers is everything the registry mounts. Nil entries are skipped.
type Handlers struct {
	Root         *handler.RootHandler
	People       *handler.PeopleHandler
	Skills       *handler.SkillHandler
	PersonSkills *handler.PersonSkillHandler
	Health       *handler.HealthHandler

	Changes fiber.Handler
	Metrics http.Handler
}

type Registry struct {
	basePath string
	h        Handlers
}

func NewRegistry(basePath string, h Handlers) *Registry {
	return &Registry{basePath: basePath, h: h}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerOps(app)
	r.registerAPI(app)
}

func (r *Registry) registerOps(app *fiber.App) {
	if r.h.Health != nil {
		r.h.Health.RegisterRoutes(app)
	}
	if r.h.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(r.h.Metrics))
	}
	if r.h.Changes != nil {
		app.Get("/ws", r.h.Changes)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	var api fiber.Router = app
	if r.basePath != "" && r.basePath != "/" {
		api = app.Group(r.basePath)
	}

	if r.h.Root != nil {
		r.h.Root.RegisterRoutes(api)
	}
	if r.h.People != nil {
		r.h.People.RegisterRoutes(api)
	}
	if r.h.Skills != nil {
		r.h.Skills.RegisterRoutes(api)
	}
	if r.h.PersonSkills != nil {
		r.h.PersonSkills.RegisterRoutes(api)
	}
}
