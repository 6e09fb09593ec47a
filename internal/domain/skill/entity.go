package skill

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID        uuid.UUID
	Name      string
	Category  string
	CreatedAt time.Time
}

type Language struct {
	ID        uuid.UUID
	Name      string
	Code      string
	CreatedAt time.Time
}

type Region struct {
	ID        uuid.UUID
	Name      string
	Code      string
	CreatedAt time.Time
}
