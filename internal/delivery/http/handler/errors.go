package handler

import (
	"errors"
	"strings"

	"skillmatrix/internal/delivery/http/middleware"
	"skillmatrix/internal/domain/skill"
	"skillmatrix/internal/pkg/response"
	"skillmatrix/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type fieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func mapUsecaseError(err error, notFoundMessage string) error {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return middleware.NewAppError(fiber.StatusBadRequest, verr.Error(), fieldError{Field: verr.Field, Reason: verr.Reason}, err)
	case errors.Is(err, usecase.ErrValidation):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, notFoundMessage, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func badBody(err error) error {
	return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
}

// minProficiencyQuery reads an optional ordinal-or-name proficiency floor.
func minProficiencyQuery(c fiber.Ctx, key string) (*skill.ProficiencyLevel, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	l, err := skill.ParseProficiency(raw)
	if err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, key+": "+err.Error(), fieldError{Field: key, Reason: err.Error()}, err)
	}
	return &l, nil
}
