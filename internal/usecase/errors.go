package usecase

import (
	"errors"
	"fmt"

	"talent-match/internal/domain/matching"
)

var (
	ErrSeekerNotFound   = errors.New("seeker not found")
	ErrJobNotFound      = errors.New("job not found")
	ErrCompanyNotFound  = errors.New("company not found")
	ErrSkillNotFound    = errors.New("skill not found")
	ErrLanguageNotFound = errors.New("language not found")
	ErrRegionNotFound   = errors.New("region not found")

	ErrSkillAlreadyExists = errors.New("skill already exists")

	ErrInvalidRange = matching.ErrInvalidRange
	ErrInvalidInput = errors.New("invalid input")

	ErrDataAccess   = errors.New("data access failure")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

var classified = []error{
	ErrSeekerNotFound, ErrJobNotFound, ErrCompanyNotFound, ErrSkillNotFound,
	ErrLanguageNotFound, ErrRegionNotFound, ErrSkillAlreadyExists,
	ErrInvalidRange, ErrInvalidInput, ErrDataAccess,
}

// txError leaves errors returned from inside a transaction as they are and
// tags the ones raised by begin or commit as data access failures.
func txError(op string, err error) error {
	for _, known := range classified {
		if errors.Is(err, known) {
			return err
		}
	}
	return dataAccess(op, err)
}

// dataAccess keeps both the failure kind and the store error visible to errors.Is.
func dataAccess(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrDataAccess, op, err)
}
