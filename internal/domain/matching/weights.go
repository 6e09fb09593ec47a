package matching

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"talent-match/internal/domain/level"
)

var ErrInvalidRange = level.ErrInvalidRange

// Weights is the versioned scoring table. Category maxima must add up to 100.
type Weights struct {
	Version                 string `yaml:"version"`
	Skills                  int    `yaml:"skills"`
	PreferredSkillBonus     int    `yaml:"preferred_skill_bonus"`
	Languages               int    `yaml:"languages"`
	Location                int    `yaml:"location"`
	Experience              int    `yaml:"experience"`
	Education               int    `yaml:"education"`
	Accommodations          int    `yaml:"accommodations"`
	AdjacentEducationCredit int    `yaml:"adjacent_education_credit"`
}

func DefaultWeights() Weights {
	return Weights{
		Version:                 "2024.1",
		Skills:                  40,
		PreferredSkillBonus:     5,
		Languages:               15,
		Location:                15,
		Experience:              15,
		Education:               10,
		Accommodations:          5,
		AdjacentEducationCredit: 50,
	}
}

func (w Weights) MaxTotal() int {
	return w.Skills + w.Languages + w.Location + w.Experience + w.Education + w.Accommodations
}

// Fingerprint is the version label plus a digest of every weight. Editing a
// value without bumping Version still yields a new fingerprint.
func (w Weights) Fingerprint() string {
	b, _ := json.Marshal(w)
	sum := sha256.Sum256(b)
	return w.Version + "-" + hex.EncodeToString(sum[:8])
}

func (w Weights) Validate() error {
	if strings.TrimSpace(w.Version) == "" {
		return fmt.Errorf("%w: weights version is empty", ErrInvalidRange)
	}
	fields := []struct {
		name string
		v    int
	}{
		{"skills", w.Skills},
		{"preferred_skill_bonus", w.PreferredSkillBonus},
		{"languages", w.Languages},
		{"location", w.Location},
		{"experience", w.Experience},
		{"education", w.Education},
		{"accommodations", w.Accommodations},
		{"adjacent_education_credit", w.AdjacentEducationCredit},
	}
	for _, f := range fields {
		if f.v < 0 {
			return fmt.Errorf("%w: weight %s is negative (%d)", ErrInvalidRange, f.name, f.v)
		}
	}
	if total := w.MaxTotal(); total != 100 {
		return fmt.Errorf("%w: category maxima sum to %d, want 100", ErrInvalidRange, total)
	}
	if w.PreferredSkillBonus > w.Skills {
		return fmt.Errorf("%w: preferred_skill_bonus %d exceeds skills max %d", ErrInvalidRange, w.PreferredSkillBonus, w.Skills)
	}
	if w.AdjacentEducationCredit > 100 {
		return fmt.Errorf("%w: adjacent_education_credit %d exceeds 100", ErrInvalidRange, w.AdjacentEducationCredit)
	}
	return nil
}
