package company

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID                     uuid.UUID
	Name                   string
	TaxID                  string
	Description            string
	Website                string
	LogoURL                string
	Address                string
	Phone                  string
	Email                  string
	RegionID               *uuid.UUID
	CompletenessPercentage int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
