package dto

import "skillmatrix/internal/domain/skill"

type SkillRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// AddPersonSkillRequest accepts proficiencyLevel as the ordinal (4) or the
// name ("Advanced").
type AddPersonSkillRequest struct {
	SkillID           string                 `json:"skillId"`
	ProficiencyLevel  skill.ProficiencyLevel `json:"proficiencyLevel"`
	YearsOfExperience *int                   `json:"yearsOfExperience"`
}

type UpdatePersonSkillRequest struct {
	ProficiencyLevel  skill.ProficiencyLevel `json:"proficiencyLevel"`
	YearsOfExperience *int                   `json:"yearsOfExperience"`
}
