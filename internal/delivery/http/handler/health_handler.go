package handler

import (
	"context"
	"time"

	"skillmatrix/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type OptionalPinger interface {
	Pinger
	Enabled() bool
}

const healthTimeout = 2 * time.Second

// HealthHandler reports store and cache reachability. Only the store is
// required; a down cache degrades the report without failing it.
type HealthHandler struct {
	store Pinger
	cache OptionalPinger
}

func NewHealthHandler(store Pinger, cache OptionalPinger) *HealthHandler {
	return &HealthHandler{store: store, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Check)
}

type healthData struct {
	Store string `json:"store"`
	Cache string `json:"cache"`
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	data := healthData{Store: "up", Cache: "disabled"}
	status := fiber.StatusOK

	if h.store == nil {
		data.Store = "down"
		status = fiber.StatusServiceUnavailable
	} else if err := h.store.Ping(ctx); err != nil {
		data.Store = "down"
		status = fiber.StatusServiceUnavailable
	}

	if h.cache != nil && h.cache.Enabled() {
		data.Cache = "up"
		if err := h.cache.Ping(ctx); err != nil {
			data.Cache = "down"
		}
	}

	if status != fiber.StatusOK {
		return response.Error(c, status, "Service unavailable", data)
	}
	return response.Success(c, status, response.MessageOK, data)
}
