package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/google/uuid"
)

const ScoreKeyPrefix = "score:"

// ScoreKey identifies one scored pair at one content revision of each side.
type ScoreKey struct {
	SeekerID       uuid.UUID `json:"seeker_id"`
	SeekerRevision int64     `json:"seeker_rev"`
	JobID          uuid.UUID `json:"job_id"`
	JobRevision    int64     `json:"job_rev"`
	Disclose       bool      `json:"disclose"`
}

// String renders the cache key under a weights fingerprint.
func (k ScoreKey) String(weights string) string {
	b, _ := json.Marshal(k)
	sum := sha256.Sum256(b)
	return ScoreKeyPrefix + weights + ":" + hex.EncodeToString(sum[:])
}
