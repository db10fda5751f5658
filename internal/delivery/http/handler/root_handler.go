package handler

import (
	"skillmatrix/internal/pkg/response"
	"skillmatrix/internal/readmodel"

	"github.com/gofiber/fiber/v3"
)

type RootHandler struct {
	asm *readmodel.Assembler
}

func NewRootHandler(asm *readmodel.Assembler) *RootHandler {
	return &RootHandler{asm: asm}
}

func (h *RootHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/", h.Index)
}

// Index serves the API entry point: the root link set plus the health and
// metrics endpoints, which live outside the API base path.
func (h *RootHandler) Index(c fiber.Ctx) error {
	links := h.asm.Root()
	links["health"] = "/health"
	links["metrics"] = "/metrics"
	links["changes"] = "/ws"
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{"links": links})
}
