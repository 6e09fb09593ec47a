package completeness

import (
	"errors"
	"testing"
	"time"

	"talent-match/internal/domain/company"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/level"
	"talent-match/internal/domain/seeker"

	"github.com/google/uuid"
)

func weightSum[T any](t Table[T]) int {
	sum := 0
	for _, r := range t.Rules() {
		sum += r.Weight
	}
	return sum
}

func TestTables_SumTo100(t *testing.T) {
	if got := weightSum(SeekerTable()); got != 100 {
		t.Fatalf("seeker table sums to %d", got)
	}
	if got := weightSum(CompanyTable()); got != 100 {
		t.Fatalf("company table sums to %d", got)
	}
	if got := weightSum(JobTable()); got != 100 {
		t.Fatalf("job table sums to %d", got)
	}
}

func TestSeeker(t *testing.T) {
	region := uuid.New()
	empty := seeker.Aggregate{}
	if got := Seeker(empty); got != 0 {
		t.Fatalf("expected 0 for empty profile, got %d", got)
	}
	if got := len(SeekerTable().Missing(empty)); got != len(SeekerTable().Rules()) {
		t.Fatalf("expected every field missing, got %d", got)
	}

	full := seeker.Aggregate{
		Profile: seeker.Profile{
			FirstName:         "Luz",
			LastName:          "Huaman",
			Phone:             "+51 999 000 111",
			RegionID:          &region,
			Headline:          "Accountant",
			Bio:               "Ten years in audit",
			YearsOfExperience: 10,
			HasCV:             true,
			Education:         []seeker.EducationRecord{{Level: level.EducationUniversity, Completed: true}},
		},
		Skills:    []seeker.Skill{{SkillID: uuid.New()}, {SkillID: uuid.New()}, {SkillID: uuid.New()}},
		Languages: []seeker.Language{{LanguageID: uuid.New(), Level: level.LanguageNative}},
	}
	if got := Seeker(full); got != 100 {
		t.Fatalf("expected 100, got %d (missing %v)", got, SeekerTable().Missing(full))
	}

	partial := full
	partial.Profile.FirstName = "  "
	partial.Skills = partial.Skills[:2]
	if got := Seeker(partial); got != 75 {
		t.Fatalf("expected 75, got %d", got)
	}
	missing := SeekerTable().Missing(partial)
	if len(missing) != 2 || missing[0] != "full_name" || missing[1] != "skills" {
		t.Fatalf("expected [full_name skills], got %v", missing)
	}
}

func TestCompany(t *testing.T) {
	c := company.Company{Name: "Andes", Email: "hr@andes.example", RegionID: &uuid.Nil}
	// a nil region id does not count
	if got := Company(c); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
}

func TestJob(t *testing.T) {
	deadline := time.Now()
	a := job.Aggregate{
		Job: job.Job{
			Title:               "Nurse",
			YearsExperienceMax:  new(int),
			EducationLevel:      level.EducationTechnical,
			ApplicationDeadline: &deadline,
		},
		RequiredSkills: []job.SkillRequirement{{SkillID: uuid.New(), MinimumProficiency: 3}},
	}
	if got := Job(a); got != 55 {
		t.Fatalf("expected 55, got %d (missing %v)", got, JobTable().Missing(a))
	}
}

func TestNewTable_Validation(t *testing.T) {
	yes := func(int) bool { return true }
	if _, err := NewTable("x", Rule[int]{Field: "a", Weight: 60, Satisfied: yes}, Rule[int]{Field: "b", Weight: 50, Satisfied: yes}); !errors.Is(err, level.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for sum over 100, got %v", err)
	}
	if _, err := NewTable("x", Rule[int]{Field: "a", Weight: -1, Satisfied: yes}); !errors.Is(err, level.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for negative weight, got %v", err)
	}
	if _, err := NewTable[int]("x", Rule[int]{Field: "a", Weight: 10}); !errors.Is(err, level.ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for missing predicate, got %v", err)
	}
	tb, err := NewTable("x", Rule[int]{Field: "a", Weight: 30, Satisfied: func(v int) bool { return v > 0 }})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if tb.Compute(1) != 30 || tb.Compute(0) != 0 {
		t.Fatalf("unexpected compute results %d %d", tb.Compute(1), tb.Compute(0))
	}
}
