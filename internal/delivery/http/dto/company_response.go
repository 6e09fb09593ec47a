package dto

import "github.com/google/uuid"

type CompanyRequest struct {
	Name        string     `json:"name"`
	TaxID       string     `json:"tax_id"`
	Description string     `json:"description"`
	Website     string     `json:"website"`
	LogoURL     string     `json:"logo_url"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	RegionID    *uuid.UUID `json:"region_id"`
}

type CompanyResponse struct {
	ID                     uuid.UUID `json:"id"`
	Name                   string    `json:"name"`
	CompletenessPercentage int       `json:"completeness_percentage"`
}
