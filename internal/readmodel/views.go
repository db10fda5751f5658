package readmodel

import (
	"time"

	"skillmatrix/internal/domain/skill"
)

type PersonSummary struct {
	ID         string         `json:"id"`
	FirstName  string         `json:"firstName"`
	LastName   string         `json:"lastName"`
	JobTitle   string         `json:"jobTitle"`
	Department string         `json:"department"`
	PhotoURL   *string        `json:"photoUrl"`
	TopSkills  []SkillSummary `json:"topSkills"`
	Links      Links          `json:"links"`
}

type PersonDetail struct {
	ID         string            `json:"id"`
	FirstName  string            `json:"firstName"`
	LastName   string            `json:"lastName"`
	JobTitle   string            `json:"jobTitle"`
	Department string            `json:"department"`
	Email      string            `json:"email"`
	PhotoURL   *string           `json:"photoUrl"`
	Skills     []PersonSkillView `json:"skills"`
	Links      Links             `json:"links"`
}

// SkillSummary doubles as the top-skill entry of a person summary, in which
// case ProficiencyLevel and IsVerified are set.
type SkillSummary struct {
	ID               string                  `json:"id"`
	Name             string                  `json:"name"`
	Category         string                  `json:"category"`
	ProficiencyLevel *skill.ProficiencyLevel `json:"proficiencyLevel,omitempty"`
	IsVerified       *bool                   `json:"isVerified,omitempty"`
	Links            Links                   `json:"links"`
}

type SkillDetail struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Category    string                  `json:"category"`
	People      []PersonWithProficiency `json:"people"`
	Links       Links                   `json:"links"`
}

type PersonSkillView struct {
	ID                string                 `json:"id"`
	SkillID           string                 `json:"skillId"`
	SkillName         string                 `json:"skillName"`
	SkillDescription  string                 `json:"skillDescription"`
	SkillCategory     string                 `json:"skillCategory"`
	ProficiencyLevel  skill.ProficiencyLevel `json:"proficiencyLevel"`
	YearsOfExperience *int                   `json:"yearsOfExperience"`
	IsVerified        bool                   `json:"isVerified"`
	Verifications     []VerificationView     `json:"verifications"`
	Links             Links                  `json:"links"`
}

// PersonWithProficiency is one holder of a skill, annotated with that
// holder's proficiency for the skill.
type PersonWithProficiency struct {
	PersonID          string                 `json:"personId"`
	FirstName         string                 `json:"firstName"`
	LastName          string                 `json:"lastName"`
	JobTitle          string                 `json:"jobTitle"`
	PhotoURL          *string                `json:"photoUrl"`
	ProficiencyLevel  skill.ProficiencyLevel `json:"proficiencyLevel"`
	IsVerified        bool                   `json:"isVerified"`
	YearsOfExperience *int                   `json:"yearsOfExperience"`
	Links             Links                  `json:"links"`
}

type VerificationView struct {
	ID               string    `json:"id"`
	PersonSkillID    string    `json:"personSkillId"`
	VerificationType string    `json:"verificationType"`
	VerifiedBy       *string   `json:"verifiedBy"`
	Note             *string   `json:"note"`
	CertificationURL *string   `json:"certificationUrl"`
	VerificationDate time.Time `json:"verificationDate"`
}
