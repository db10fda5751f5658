package handler

import (
	"skillmatrix/internal/delivery/http/dto"
	"skillmatrix/internal/pkg/response"
	"skillmatrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const skillNotFound = "Skill not found"

type SkillHandler struct {
	uc usecase.SkillUsecase
}

func NewSkillHandler(uc usecase.SkillUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Get("/:id/people", h.People)
}

// List serves GET /skills?search=&category=; search wins when both are set.
func (h *SkillHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), usecase.SkillFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		return mapUsecaseError(err, skillNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *SkillHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err, skillNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}

func (h *SkillHandler) People(c fiber.Ctx) error {
	min, err := minProficiencyQuery(c, "minProficiency")
	if err != nil {
		return err
	}
	items, err := h.uc.People(c.Context(), c.Params("id"), min)
	if err != nil {
		return mapUsecaseError(err, skillNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *SkillHandler) Create(c fiber.Ctx) error {
	var req dto.SkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}

	created, err := h.uc.Create(c.Context(), skillInput(req))
	if err != nil {
		return mapUsecaseError(err, skillNotFound)
	}
	c.Location(created.Links["self"])
	return response.Created(c, created)
}

func (h *SkillHandler) Update(c fiber.Ctx) error {
	var req dto.SkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}

	updated, err := h.uc.Update(c.Context(), c.Params("id"), skillInput(req))
	if err != nil {
		return mapUsecaseError(err, skillNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Skill updated successfully", updated)
}

func (h *SkillHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err, skillNotFound)
	}
	return response.NoContent(c)
}

func skillInput(req dto.SkillRequest) usecase.SkillInput {
	return usecase.SkillInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	}
}
