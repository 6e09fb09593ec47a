package level

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidRange = errors.New("value out of range")

const (
	MinProficiency = 1
	MaxProficiency = 5
)

func ValidProficiency(v int) bool {
	return v >= MinProficiency && v <= MaxProficiency
}

// Education is the fixed seniority ladder used by seekers and job postings.
// Higher values are more senior; EducationNone means "no requirement" on a job.
type Education int

const (
	EducationNone Education = iota
	EducationPrimary
	EducationSecondary
	EducationTechnical
	EducationUniversity
	EducationPostgraduate
)

var educationNames = map[Education]string{
	EducationNone:         "none",
	EducationPrimary:      "primary",
	EducationSecondary:    "secondary",
	EducationTechnical:    "technical",
	EducationUniversity:   "university",
	EducationPostgraduate: "postgraduate",
}

func (e Education) Valid() bool {
	return e >= EducationNone && e <= EducationPostgraduate
}

func (e Education) String() string {
	if n, ok := educationNames[e]; ok {
		return n
	}
	return fmt.Sprintf("education(%d)", int(e))
}

func ParseEducation(s string) (Education, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return EducationNone, nil
	}
	for e, n := range educationNames {
		if n == s {
			return e, nil
		}
	}
	return EducationNone, fmt.Errorf("%w: unknown education level %q", ErrInvalidRange, s)
}

// Language is a proficiency tier; the numeric value doubles as the 1..5 proficiency.
type Language int

const (
	LanguageBasic Language = iota + 1
	LanguageIntermediate
	LanguageAdvanced
	LanguageFluent
	LanguageNative
)

var languageNames = map[Language]string{
	LanguageBasic:        "basic",
	LanguageIntermediate: "intermediate",
	LanguageAdvanced:     "advanced",
	LanguageFluent:       "fluent",
	LanguageNative:       "native",
}

func (l Language) Valid() bool {
	return ValidProficiency(int(l))
}

func (l Language) String() string {
	if n, ok := languageNames[l]; ok {
		return n
	}
	return fmt.Sprintf("language(%d)", int(l))
}

func ParseLanguage(s string) (Language, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for l, n := range languageNames {
		if n == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown language level %q", ErrInvalidRange, s)
}
