package handler

import (
	"skillmatrix/internal/delivery/http/dto"
	"skillmatrix/internal/pkg/response"
	"skillmatrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const (
	personSkillNotFound  = "Person skill not found"
	verificationNotFound = "Verification not found"
)

// PersonSkillHandler serves the skills of a person and the verification
// sub-resource of each person skill.
type PersonSkillHandler struct {
	skills        usecase.PersonSkillUsecase
	verifications usecase.VerificationUsecase
}

func NewPersonSkillHandler(skills usecase.PersonSkillUsecase, verifications usecase.VerificationUsecase) *PersonSkillHandler {
	return &PersonSkillHandler{skills: skills, verifications: verifications}
}

func (h *PersonSkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	people := r.Group("/people/:id/skills")
	people.Post("/", h.Add)
	people.Put("/:skillId", h.Update)
	people.Delete("/:skillId", h.Remove)

	ps := r.Group("/personskills/:personSkillId")
	ps.Post("/verify", h.Verify)
	ps.Get("/verifications", h.ListVerifications)
	ps.Post("/verifications", h.RecordVerification)
	ps.Delete("/verifications/:verificationId", h.RemoveVerification)
}

func (h *PersonSkillHandler) Add(c fiber.Ctx) error {
	var req dto.AddPersonSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}

	created, err := h.skills.Add(c.Context(), c.Params("id"), usecase.AddPersonSkillInput{
		SkillID:           req.SkillID,
		ProficiencyLevel:  req.ProficiencyLevel,
		YearsOfExperience: req.YearsOfExperience,
	})
	if err != nil {
		return mapUsecaseError(err, "Person or skill not found")
	}
	return response.Created(c, created)
}

func (h *PersonSkillHandler) Update(c fiber.Ctx) error {
	var req dto.UpdatePersonSkillRequest
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}

	updated, err := h.skills.Update(c.Context(), c.Params("id"), c.Params("skillId"), usecase.UpdatePersonSkillInput{
		ProficiencyLevel:  req.ProficiencyLevel,
		YearsOfExperience: req.YearsOfExperience,
	})
	if err != nil {
		return mapUsecaseError(err, personSkillNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Skill updated successfully", updated)
}

func (h *PersonSkillHandler) Remove(c fiber.Ctx) error {
	if err := h.skills.Remove(c.Context(), c.Params("id"), c.Params("skillId")); err != nil {
		return mapUsecaseError(err, personSkillNotFound)
	}
	return response.NoContent(c)
}

func (h *PersonSkillHandler) Verify(c fiber.Ctx) error {
	view, err := h.verifications.VerifyDirectly(c.Context(), c.Params("personSkillId"))
	if err != nil {
		return mapUsecaseError(err, personSkillNotFound)
	}
	return response.Success(c, fiber.StatusOK, "Skill verified successfully", view)
}

func (h *PersonSkillHandler) ListVerifications(c fiber.Ctx) error {
	items, err := h.verifications.List(c.Context(), c.Params("personSkillId"))
	if err != nil {
		return mapUsecaseError(err, personSkillNotFound)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *PersonSkillHandler) RecordVerification(c fiber.Ctx) error {
	var req dto.VerificationRequest
	if err := c.Bind().Body(&req); err != nil {
		return badBody(err)
	}

	created, err := h.verifications.Record(c.Context(), c.Params("personSkillId"), usecase.VerificationInput{
		VerificationType: req.VerificationType,
		VerifiedBy:       req.VerifiedBy,
		Note:             req.Note,
		CertificationURL: req.CertificationURL,
		VerificationDate: req.VerificationDate,
	})
	if err != nil {
		return mapUsecaseError(err, personSkillNotFound)
	}
	return response.Created(c, created)
}

func (h *PersonSkillHandler) RemoveVerification(c fiber.Ctx) error {
	err := h.verifications.Remove(c.Context(), c.Params("personSkillId"), c.Params("verificationId"))
	if err != nil {
		return mapUsecaseError(err, verificationNotFound)
	}
	return response.NoContent(c)
}
