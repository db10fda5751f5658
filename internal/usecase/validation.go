package usecase

import (
	"net/mail"
	"strconv"
	"strings"
	"unicode/utf8"

	"skillmatrix/internal/domain/skill"
)

func requiredText(field, v string, max int) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", invalid(field, "is required")
	}
	if utf8.RuneCountInString(v) > max {
		return "", invalid(field, "must be at most "+strconv.Itoa(max)+" characters")
	}
	return v, nil
}

func optionalText(field, v string, max int) (string, error) {
	v = strings.TrimSpace(v)
	if utf8.RuneCountInString(v) > max {
		return "", invalid(field, "must be at most "+strconv.Itoa(max)+" characters")
	}
	return v, nil
}

// optionalPtr trims v; blank input becomes nil.
func optionalPtr(field string, v *string, max int) (*string, error) {
	if v == nil {
		return nil, nil
	}
	s, err := optionalText(field, *v, max)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}

func validEmail(field, v string, max int) (string, error) {
	v, err := requiredText(field, v, max)
	if err != nil {
		return "", err
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return "", invalid(field, "must be a valid email address")
	}
	return v, nil
}

func validProficiency(field string, l skill.ProficiencyLevel) error {
	if !l.Valid() {
		return invalid(field, "must be between 1 (Novice) and 5 (Expert)")
	}
	return nil
}

func validYears(field string, years *int) error {
	if years != nil && *years < 0 {
		return invalid(field, "must not be negative")
	}
	return nil
}

func requiredID(field, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", invalid(field, "is required")
	}
	return v, nil
}
