package usecase

import (
	"time"

	"talent-match/internal/domain/job"
	"talent-match/internal/domain/seeker"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type fixture struct {
	s      *memStore
	region uuid.UUID
	other  uuid.UUID
	skillA uuid.UUID
	skillB uuid.UUID
	skillC uuid.UUID
	future time.Time
}

func newFixture() *fixture {
	f := &fixture{
		s:      newMemStore(),
		region: uuid.New(),
		other:  uuid.New(),
		skillA: uuid.New(),
		skillB: uuid.New(),
		skillC: uuid.New(),
		future: time.Now().Add(30 * 24 * time.Hour),
	}
	f.s.regions[f.region] = true
	f.s.regions[f.other] = true
	f.s.skills[f.skillA] = "Go"
	f.s.skills[f.skillB] = "PostgreSQL"
	f.s.skills[f.skillC] = "Kubernetes"
	return f
}

func (f *fixture) addSeeker(vis seeker.Visibility, skills ...seeker.Skill) uuid.UUID {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	id := uuid.New()
	ts := f.s.tick()
	region := f.region
	for i := range skills {
		skills[i].SkillName = f.s.skills[skills[i].SkillID]
	}
	f.s.seekers[id] = seeker.Aggregate{
		Profile: seeker.Profile{
			ID:        id,
			FirstName: "Ana",
			LastName:  "Quispe",
			RegionID:  &region,
			CreatedAt: ts,
			UpdatedAt: ts,
		},
		Skills:      skills,
		Preferences: seeker.Preferences{Visibility: vis},
	}
	return id
}

type jobOpt func(*job.Aggregate)

func withStatus(st job.Status) jobOpt {
	return func(a *job.Aggregate) { a.Job.Status = st }
}

func withDeadline(d time.Time) jobOpt {
	return func(a *job.Aggregate) { a.Job.ApplicationDeadline = &d }
}

func withRequired(reqs ...job.SkillRequirement) jobOpt {
	return func(a *job.Aggregate) { a.RequiredSkills = reqs }
}

func withRegion(id uuid.UUID) jobOpt {
	return func(a *job.Aggregate) { a.Job.RegionID = &id }
}

func withTimes(created, updated time.Time) jobOpt {
	return func(a *job.Aggregate) {
		a.Job.CreatedAt = created
		a.Job.UpdatedAt = updated
	}
}

func withID(id uuid.UUID) jobOpt {
	return func(a *job.Aggregate) { a.Job.ID = id }
}

// addJob stores an active on-site posting in the fixture region, open for a month.
func (f *fixture) addJob(opts ...jobOpt) uuid.UUID {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	ts := f.s.tick()
	region := f.region
	deadline := f.future
	agg := job.Aggregate{Job: job.Job{
		ID:                  uuid.New(),
		CompanyID:           uuid.New(),
		Title:               "Backend Engineer",
		Status:              job.StatusActive,
		RegionID:            &region,
		WorkModality:        job.ModalityOnSite,
		ApplicationDeadline: &deadline,
		CreatedAt:           ts,
		UpdatedAt:           ts,
	}}
	for _, o := range opts {
		o(&agg)
	}
	f.s.jobs[agg.Job.ID] = agg
	return agg.Job.ID
}

func req(id uuid.UUID, minimum int) job.SkillRequirement {
	return job.SkillRequirement{SkillID: id, MinimumProficiency: minimum}
}

func has(id uuid.UUID, proficiency int) seeker.Skill {
	return seeker.Skill{SkillID: id, Proficiency: proficiency}
}

func repositoryUserSkill(userID, skillID uuid.UUID, proficiency int) repository.UserSkill {
	return repository.UserSkill{UserID: userID, SkillID: skillID, ProficiencyLevel: proficiency}
}
