package handler

import (
	"skillmatrix/internal/delivery/http/dto"
	"skillmatrix/internal/pkg/response"
	"skillmatrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const personNotFound = "Person not found"

type PeopleHandler struct {
	uc usecase.PeopleUsecase
}

func NewPeopleHandler(uc usecase.PeopleUsecase) *PeopleHandler {
	return &PeopleHandler{uc: uc}
}

func (h *PeopleHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/people")
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.Get)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
	grp.Get("/:id/skills", h.Skills)
}

// List serves GET /people?search=&skillId=&minProficiency=.
func (h *PeopleHandler) List(c fiber.Ctx) error {
	min, err := minProficiencyQuery(c, "minProficiency")
	if err != nil {
		return err
	}

	items, err := h.uc.List(c.Context(), usecase.PeopleFilter{
		Search:         c.Query("search"),
		SkillID:        c.Query("skillId"),
		MinProficiency: min,
	})
	if err != nil {
		return mapUsecaseError(err, "Skill not found")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *PeopleHandler) Get(c fiber.Ctx) error {
	item, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err, personNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, item)
}

func (h *PeopleHandler) Skills(c fiber.Ctx) error {
	items, err := h.uc.Skills(c.Context(), c.Params("id"))
	if err != nil {
		return mapUsecaseError(err, personNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *PeopleHandler) Create(c fiber.Ctx) error {
	var req dto.PersonRequest
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}

	created, err := h.uc.Create(c.Context(), personInput(req))
	if err != nil {
		return mapUsecaseError(err, personNotFound)
	}
	c.Location(created.Links["self"])
	return response.Created(c, created)
}

func (h *PeopleHandler) Update(c fiber.Ctx) error {
	var req dto.PersonRequest
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}

	updated, err := h.uc.Update(c.Context(), c.Params("id"), personInput(req))
	if err != nil {
		return mapUsecaseError(err, personNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Person updated successfully", updated)
}

func (h *PeopleHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapUsecaseError(err, personNotFound)
	}
	return response.NoContent(c)
}

func personInput(req dto.PersonRequest) usecase.PersonInput {
	return usecase.PersonInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		JobTitle:   req.JobTitle,
		Department: req.Department,
		Email:      req.Email,
		PhotoURL:   req.PhotoURL,
	}
}
