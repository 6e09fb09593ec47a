package dto

import "github.com/google/uuid"

type AddUserSkillRequest struct {
	SkillID          uuid.UUID `json:"skill_id"`
	ProficiencyLevel int       `json:"proficiency_level"`
	YearsExperience  *int      `json:"years_experience"`
}

type UpdateUserSkillRequest struct {
	ProficiencyLevel int  `json:"proficiency_level"`
	YearsExperience  *int `json:"years_experience"`
}

type UserSkillResponse struct {
	ID               uuid.UUID `json:"id"`
	SkillID          uuid.UUID `json:"skill_id"`
	SkillName        string    `json:"skill_name"`
	ProficiencyLevel int       `json:"proficiency_level"`
	YearsExperience  *int      `json:"years_experience"`
}

type UserSkillWriteResponse struct {
	Skill                  *UserSkillResponse `json:"skill,omitempty"`
	CompletenessPercentage int                `json:"completeness_percentage"`
}
