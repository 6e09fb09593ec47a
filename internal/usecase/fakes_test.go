package usecase

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"talent-match/internal/domain/company"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/seeker"
	"talent-match/internal/domain/skill"
	"talent-match/internal/ranking"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

// memStore backs every fake repository. Safe for the concurrent reads the
// ranking pool performs.
type memStore struct {
	mu sync.Mutex
	// held for the whole of a fakeTx transaction
	txMu sync.Mutex

	seekers   map[uuid.UUID]seeker.Aggregate
	noProfile map[uuid.UUID]time.Time
	jobs      map[uuid.UUID]job.Aggregate
	companies map[uuid.UUID]company.Company
	applied   map[[2]uuid.UUID]bool
	skills    map[uuid.UUID]string
	languages map[uuid.UUID]bool
	regions   map[uuid.UUID]bool

	// hidden from Get but still listed, to simulate a row vanishing mid-page
	vanished map[uuid.UUID]bool
	// returned hidden on Get although listed with their stored visibility
	hideOnGet map[uuid.UUID]bool

	profileErr      error
	completenessErr error

	getErr     error
	listErr    error
	appsErr    error
	seekerGets int
	jobGets    int
	locks      int
	commits    int
	clock      time.Time
}

func newMemStore() *memStore {
	return &memStore{
		seekers:   map[uuid.UUID]seeker.Aggregate{},
		noProfile: map[uuid.UUID]time.Time{},
		jobs:      map[uuid.UUID]job.Aggregate{},
		companies: map[uuid.UUID]company.Company{},
		applied:   map[[2]uuid.UUID]bool{},
		skills:    map[uuid.UUID]string{},
		languages: map[uuid.UUID]bool{},
		regions:   map[uuid.UUID]bool{},
		vanished:  map[uuid.UUID]bool{},
		hideOnGet: map[uuid.UUID]bool{},
		clock:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Millisecond)
	return s.clock
}

type memSnapshot struct {
	seekers   map[uuid.UUID]seeker.Aggregate
	jobs      map[uuid.UUID]job.Aggregate
	companies map[uuid.UUID]company.Company
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := memSnapshot{
		seekers:   make(map[uuid.UUID]seeker.Aggregate, len(s.seekers)),
		jobs:      make(map[uuid.UUID]job.Aggregate, len(s.jobs)),
		companies: make(map[uuid.UUID]company.Company, len(s.companies)),
	}
	for id, a := range s.seekers {
		a.Skills = append([]seeker.Skill(nil), a.Skills...)
		snap.seekers[id] = a
	}
	for id, a := range s.jobs {
		snap.jobs[id] = a
	}
	for id, c := range s.companies {
		snap.companies[id] = c
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seekers = snap.seekers
	s.jobs = snap.jobs
	s.companies = snap.companies
}

func (s *memStore) apply(jobID, seekerID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied[[2]uuid.UUID{jobID, seekerID}] = true
}

// fakeTx runs one transaction at a time and puts the store back the way it
// was at begin when fn fails.
type fakeTx struct{ s *memStore }

func (t fakeTx) InTx(_ context.Context, fn func(repository.Stores) error) error {
	t.s.txMu.Lock()
	defer t.s.txMu.Unlock()

	snap := t.s.snapshot()
	err := fn(repository.Stores{
		Profiles:   fakeProfiles{t.s},
		UserSkills: fakeUserSkills{t.s},
		Jobs:       fakeJobs{t.s},
		Companies:  fakeCompanies{t.s},
	})
	if err != nil {
		t.s.restore(snap)
		return err
	}
	t.s.mu.Lock()
	t.s.commits++
	t.s.mu.Unlock()
	return nil
}

type fakeProfiles struct{ s *memStore }

func (f fakeProfiles) Get(_ context.Context, id uuid.UUID) (seeker.Aggregate, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.seekerGets++
	if f.s.getErr != nil {
		return seeker.Aggregate{}, f.s.getErr
	}
	if f.s.profileErr != nil {
		return seeker.Aggregate{}, f.s.profileErr
	}
	agg, ok := f.s.seekers[id]
	if !ok || f.s.vanished[id] {
		return seeker.Aggregate{}, repository.ErrNotFound
	}
	if f.s.hideOnGet[id] {
		agg.Preferences.Visibility = seeker.VisibilityHidden
	}
	return agg, nil
}

// ListCandidateRefs applies the same conditions as the SQL listing: a
// profile is required, hidden seekers are skipped and applied_only ones need
// an application for the job. Newest first, then by id.
func (f fakeProfiles) ListCandidateRefs(_ context.Context, filter repository.CandidateFilter) ([]repository.CandidateRef, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.listErr != nil {
		return nil, f.s.listErr
	}
	out := make([]repository.CandidateRef, 0, len(f.s.seekers))
	for id, a := range f.s.seekers {
		vis := a.Preferences.Visibility
		if vis == "" {
			vis = seeker.VisibilityPublic
		}
		switch vis {
		case seeker.VisibilityHidden:
			continue
		case seeker.VisibilityAppliedOnly:
			if !f.s.applied[[2]uuid.UUID{filter.JobID, id}] {
				continue
			}
		}
		out = append(out, repository.CandidateRef{
			SeekerID:           id,
			Visibility:         vis,
			ShowDisabilityInfo: a.Preferences.ShowDisabilityInfo,
			HasProfile:         true,
			FirstName:          a.Profile.FirstName,
			LastName:           a.Profile.LastName,
			RegionID:           a.Profile.RegionID,
			Completeness:       a.Profile.CompletenessPercentage,
			CreatedAt:          a.Profile.CreatedAt,
			UpdatedAt:          a.Profile.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].SeekerID.String() < out[j].SeekerID.String()
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f fakeProfiles) SaveProfile(_ context.Context, p seeker.Profile) (seeker.Profile, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	agg, ok := f.s.seekers[p.ID]
	if !ok {
		agg = seeker.Aggregate{Preferences: seeker.DefaultPreferences()}
		p.CreatedAt = f.s.tick()
	} else {
		p.CreatedAt = agg.Profile.CreatedAt
	}
	p.CompletenessPercentage = agg.Profile.CompletenessPercentage
	p.UpdatedAt = f.s.tick()
	agg.Profile = p
	f.s.seekers[p.ID] = agg
	return p, nil
}

func (f fakeProfiles) SavePreferences(_ context.Context, id uuid.UUID, prefs seeker.Preferences) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	agg, ok := f.s.seekers[id]
	if !ok {
		return repository.ErrNotFound
	}
	agg.Preferences = prefs
	agg.Profile.UpdatedAt = f.s.tick()
	f.s.seekers[id] = agg
	return nil
}

func (f fakeProfiles) Lock(_ context.Context, id uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.locks++
	if _, ok := f.s.seekers[id]; !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (f fakeProfiles) UpdateCompleteness(_ context.Context, id uuid.UUID, pct int) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.completenessErr != nil {
		return f.s.completenessErr
	}
	agg, ok := f.s.seekers[id]
	if !ok {
		return repository.ErrNotFound
	}
	agg.Profile.CompletenessPercentage = pct
	f.s.seekers[id] = agg
	return nil
}

type fakeJobs struct{ s *memStore }

func (f fakeJobs) Get(_ context.Context, id uuid.UUID) (job.Aggregate, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	f.s.jobGets++
	if f.s.getErr != nil {
		return job.Aggregate{}, f.s.getErr
	}
	agg, ok := f.s.jobs[id]
	if !ok || f.s.vanished[id] {
		return job.Aggregate{}, repository.ErrNotFound
	}
	return agg, nil
}

// ListActiveRefs returns every posting regardless of status so the
// in-memory eligibility stage is what gets exercised. Ordering and the limit
// follow the SQL listing.
func (f fakeJobs) ListActiveRefs(_ context.Context, filter repository.JobFilter) ([]repository.JobRef, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.listErr != nil {
		return nil, f.s.listErr
	}
	out := make([]repository.JobRef, 0, len(f.s.jobs))
	for _, a := range f.s.jobs {
		if filter.Modality != "" && a.Job.WorkModality != filter.Modality {
			continue
		}
		out = append(out, repository.JobRef{
			ID:           a.Job.ID,
			CompanyID:    a.Job.CompanyID,
			Title:        a.Job.Title,
			Status:       a.Job.Status,
			RegionID:     a.Job.RegionID,
			WorkModality: a.Job.WorkModality,
			Deadline:     a.Job.ApplicationDeadline,
			CreatedAt:    a.Job.CreatedAt,
			UpdatedAt:    a.Job.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f fakeJobs) Save(_ context.Context, agg job.Aggregate) (job.Aggregate, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if prev, ok := f.s.jobs[agg.Job.ID]; ok {
		if prev.Job.CompanyID != agg.Job.CompanyID {
			return job.Aggregate{}, repository.ErrNotFound
		}
		agg.Job.CreatedAt = prev.Job.CreatedAt
	} else {
		agg.Job.CreatedAt = f.s.tick()
	}
	agg.Job.UpdatedAt = f.s.tick()
	f.s.jobs[agg.Job.ID] = agg
	return agg, nil
}

func (f fakeJobs) UpdateCompleteness(_ context.Context, id uuid.UUID, pct int) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.completenessErr != nil {
		return f.s.completenessErr
	}
	agg, ok := f.s.jobs[id]
	if !ok {
		return repository.ErrNotFound
	}
	agg.Job.CompletenessPercentage = pct
	f.s.jobs[id] = agg
	return nil
}

type fakeApps struct{ s *memStore }

func (f fakeApps) Exists(_ context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.appsErr != nil {
		return false, f.s.appsErr
	}
	return f.s.applied[[2]uuid.UUID{jobID, seekerID}], nil
}

func (f fakeApps) JobIDsForApplicant(_ context.Context, seekerID uuid.UUID) ([]uuid.UUID, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.appsErr != nil {
		return nil, f.s.appsErr
	}
	var out []uuid.UUID
	for k := range f.s.applied {
		if k[1] == seekerID {
			out = append(out, k[0])
		}
	}
	return out, nil
}

func (f fakeApps) ApplicantIDsForJob(_ context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.appsErr != nil {
		return nil, f.s.appsErr
	}
	var out []uuid.UUID
	for k := range f.s.applied {
		if k[0] == jobID {
			out = append(out, k[1])
		}
	}
	return out, nil
}

type fakeUserSkills struct{ s *memStore }

func (f fakeUserSkills) FindByUserID(_ context.Context, userID uuid.UUID) ([]repository.UserSkill, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]repository.UserSkill, 0)
	for _, sk := range f.s.seekers[userID].Skills {
		out = append(out, repository.UserSkill{UserID: userID, SkillID: sk.SkillID, SkillName: sk.SkillName, ProficiencyLevel: sk.Proficiency, YearsExperience: sk.YearsOfExperience})
	}
	return out, nil
}

func (f fakeUserSkills) Create(_ context.Context, us repository.UserSkill) (repository.UserSkill, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	agg, ok := f.s.seekers[us.UserID]
	if !ok {
		return repository.UserSkill{}, repository.ErrNotFound
	}
	for _, sk := range agg.Skills {
		if sk.SkillID == us.SkillID {
			return repository.UserSkill{}, repository.ErrDuplicate
		}
	}
	us.SkillName = f.s.skills[us.SkillID]
	agg.Skills = append(agg.Skills, seeker.Skill{SkillID: us.SkillID, SkillName: us.SkillName, Proficiency: us.ProficiencyLevel, YearsOfExperience: us.YearsExperience})
	agg.Profile.UpdatedAt = f.s.tick()
	f.s.seekers[us.UserID] = agg
	return us, nil
}

func (f fakeUserSkills) Update(_ context.Context, us repository.UserSkill) (repository.UserSkill, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	agg := f.s.seekers[us.UserID]
	for i, sk := range agg.Skills {
		if sk.SkillID == us.SkillID {
			agg.Skills[i].Proficiency = us.ProficiencyLevel
			agg.Skills[i].YearsOfExperience = us.YearsExperience
			agg.Profile.UpdatedAt = f.s.tick()
			f.s.seekers[us.UserID] = agg
			us.SkillName = sk.SkillName
			return us, nil
		}
	}
	return repository.UserSkill{}, repository.ErrNotFound
}

func (f fakeUserSkills) DeleteUserSkill(_ context.Context, userID, skillID uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	agg := f.s.seekers[userID]
	for i, sk := range agg.Skills {
		if sk.SkillID == skillID {
			agg.Skills = append(agg.Skills[:i:i], agg.Skills[i+1:]...)
			agg.Profile.UpdatedAt = f.s.tick()
			f.s.seekers[userID] = agg
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeCatalog struct{ s *memStore }

func (f fakeCatalog) ListSkills(context.Context) ([]skill.Skill, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := make([]skill.Skill, 0, len(f.s.skills))
	for id, name := range f.s.skills {
		out = append(out, skill.Skill{ID: id, Name: name})
	}
	return out, nil
}

func (f fakeCatalog) SkillExists(_ context.Context, id uuid.UUID) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	_, ok := f.s.skills[id]
	return ok, nil
}

func (f fakeCatalog) LanguageExists(_ context.Context, id uuid.UUID) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.languages[id], nil
}

func (f fakeCatalog) RegionExists(_ context.Context, id uuid.UUID) (bool, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	return f.s.regions[id], nil
}

type fakeCompanies struct{ s *memStore }

func (f fakeCompanies) Get(_ context.Context, id uuid.UUID) (company.Company, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	c, ok := f.s.companies[id]
	if !ok {
		return company.Company{}, repository.ErrNotFound
	}
	return c, nil
}

func (f fakeCompanies) Save(_ context.Context, c company.Company) (company.Company, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if prev, ok := f.s.companies[c.ID]; ok {
		c.CreatedAt = prev.CreatedAt
		c.CompletenessPercentage = prev.CompletenessPercentage
	} else {
		c.CreatedAt = f.s.tick()
	}
	c.UpdatedAt = f.s.tick()
	f.s.companies[c.ID] = c
	return c, nil
}

func (f fakeCompanies) UpdateCompleteness(_ context.Context, id uuid.UUID, pct int) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.completenessErr != nil {
		return f.s.completenessErr
	}
	c, ok := f.s.companies[id]
	if !ok {
		return repository.ErrNotFound
	}
	c.CompletenessPercentage = pct
	f.s.companies[id] = c
	return nil
}

// mapCache is an in-memory JSONCache.
type mapCache struct {
	mu   sync.Mutex
	m    map[string][]byte
	err  error
	hits int
}

func newMapCache() *mapCache { return &mapCache{m: map[string][]byte{}} }

func (c *mapCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	b, ok := c.m[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, out)
}

func (c *mapCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.m[key] = b
	return nil
}

func newTestScoring(c JSONCache) *Scoring {
	scorer, err := matching.NewScorer(nil)
	if err != nil {
		panic(err)
	}
	var sc *ScoreCache
	if c != nil {
		sc = NewScoreCache(c, time.Minute, scorer.Weights(), nil)
	}
	return NewScoring(scorer, sc)
}

func newTestEngine() *ranking.Engine {
	return ranking.NewEngine(ranking.Config{Workers: 4}, nil)
}

func intPtr(v int) *int { return &v }

func uuidPtr(v uuid.UUID) *uuid.UUID { return &v }

func timePtr(v time.Time) *time.Time { return &v }
