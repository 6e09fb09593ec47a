package visibility

import (
	"talent-match/internal/domain/seeker"

	"github.com/google/uuid"
)

// IsVisible reports whether a seeker's profile may be shown to the company owning jobID.
// hasApplied must be resolved for exactly this (seekerID, jobID) pair.
// Unknown visibility values fail closed.
func IsVisible(prefs seeker.Preferences, seekerID, jobID uuid.UUID, hasApplied bool) bool {
	if seekerID == uuid.Nil || jobID == uuid.Nil {
		return false
	}
	switch prefs.Visibility {
	case seeker.VisibilityPublic:
		return true
	case seeker.VisibilityHidden:
		return false
	case seeker.VisibilityAppliedOnly:
		return hasApplied
	}
	return false
}

// DisclosesDisability gates accommodation details in breakdowns shown to companies.
// It is independent of IsVisible.
func DisclosesDisability(prefs seeker.Preferences) bool {
	return prefs.ShowDisabilityInfo
}
