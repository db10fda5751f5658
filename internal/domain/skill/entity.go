package skill

import "time"

type Person struct {
	ID         string
	FirstName  string
	LastName   string
	JobTitle   string
	Department string
	Email      string
	PhotoURL   *string
}

type Skill struct {
	ID          string
	Name        string
	Description string
	Category    string
}

// PersonSkill links one person to one skill. IsVerified is derived from the
// verification records and is never taken from client input.
type PersonSkill struct {
	ID                string
	PersonID          string
	SkillID           string
	ProficiencyLevel  ProficiencyLevel
	YearsOfExperience *int
	IsVerified        bool
}

type Verification struct {
	ID               string
	PersonSkillID    string
	VerificationType string
	VerifiedBy       *string
	Note             *string
	CertificationURL *string
	VerificationDate time.Time
}
