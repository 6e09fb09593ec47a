package routes

import (
	"context"
	"errors"
	"sync"

	"talent-match/internal/domain/company"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/seeker"
	"talent-match/internal/usecase"

	"github.com/google/uuid"
)

var errStore = errors.New("connection reset by peer")

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

type fakeMatching struct {
	mu        sync.Mutex
	res       usecase.MatchResult
	err       error
	gotSeeker uuid.UUID
	gotJob    uuid.UUID
}

func (f *fakeMatching) MatchScore(_ context.Context, seekerID, jobID uuid.UUID) (usecase.MatchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotSeeker, f.gotJob = seekerID, jobID
	return f.res, f.err
}

type fakeRecommendation struct {
	mu         sync.Mutex
	jobs       usecase.JobRecommendationPage
	candidates usecase.CandidateRecommendationPage
	err        error
	block      bool

	gotSeeker  uuid.UUID
	gotJob     uuid.UUID
	gotFilters usecase.JobFilters
	gotPage    usecase.Page
}

func (f *fakeRecommendation) RecommendedJobsForSeeker(ctx context.Context, seekerID uuid.UUID, fl usecase.JobFilters, p usecase.Page) (usecase.JobRecommendationPage, error) {
	f.mu.Lock()
	f.gotSeeker, f.gotFilters, f.gotPage = seekerID, fl, p
	block, page, err := f.block, f.jobs, f.err
	f.mu.Unlock()
	if block {
		<-ctx.Done()
		return usecase.JobRecommendationPage{}, ctx.Err()
	}
	return page, err
}

func (f *fakeRecommendation) RecommendedCandidatesForJob(ctx context.Context, jobID uuid.UUID, p usecase.Page) (usecase.CandidateRecommendationPage, error) {
	f.mu.Lock()
	f.gotJob, f.gotPage = jobID, p
	block, page, err := f.block, f.candidates, f.err
	f.mu.Unlock()
	if block {
		<-ctx.Done()
		return usecase.CandidateRecommendationPage{}, ctx.Err()
	}
	return page, err
}

type fakeProfile struct {
	mu         sync.Mutex
	err        error
	pct        int
	gotSeeker  uuid.UUID
	gotProfile usecase.ProfileInput
	gotPrefs   seeker.Preferences
	gotAdd     usecase.AddUserSkillInput
	removed    uuid.UUID
}

func (f *fakeProfile) SaveProfile(_ context.Context, seekerID uuid.UUID, in usecase.ProfileInput) (seeker.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotSeeker, f.gotProfile = seekerID, in
	if f.err != nil {
		return seeker.Profile{}, f.err
	}
	return seeker.Profile{ID: seekerID, FirstName: in.FirstName, LastName: in.LastName, CompletenessPercentage: f.pct}, nil
}

func (f *fakeProfile) SavePreferences(_ context.Context, seekerID uuid.UUID, prefs seeker.Preferences) (usecase.PreferencesResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotSeeker, f.gotPrefs = seekerID, prefs
	if f.err != nil {
		return usecase.PreferencesResult{}, f.err
	}
	return usecase.PreferencesResult{Preferences: prefs, CompletenessPercentage: f.pct}, nil
}

func (f *fakeProfile) ListSkills(_ context.Context, seekerID uuid.UUID) ([]usecase.UserSkillItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotSeeker = seekerID
	if f.err != nil {
		return nil, f.err
	}
	return []usecase.UserSkillItem{{ID: uuid.New(), SkillID: uuid.New(), SkillName: "Go", ProficiencyLevel: 4}}, nil
}

func (f *fakeProfile) AddSkill(_ context.Context, seekerID uuid.UUID, in usecase.AddUserSkillInput) (usecase.UserSkillResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotSeeker, f.gotAdd = seekerID, in
	if f.err != nil {
		return usecase.UserSkillResult{}, f.err
	}
	return usecase.UserSkillResult{
		Skill:                  usecase.UserSkillItem{ID: uuid.New(), SkillID: in.SkillID, SkillName: "Go", ProficiencyLevel: in.ProficiencyLevel},
		CompletenessPercentage: f.pct,
	}, nil
}

func (f *fakeProfile) UpdateSkill(_ context.Context, seekerID, skillID uuid.UUID, in usecase.UpdateUserSkillInput) (usecase.UserSkillResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotSeeker = seekerID
	if f.err != nil {
		return usecase.UserSkillResult{}, f.err
	}
	return usecase.UserSkillResult{
		Skill:                  usecase.UserSkillItem{ID: uuid.New(), SkillID: skillID, ProficiencyLevel: in.ProficiencyLevel},
		CompletenessPercentage: f.pct,
	}, nil
}

func (f *fakeProfile) RemoveSkill(_ context.Context, seekerID, skillID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotSeeker, f.removed = seekerID, skillID
	return f.pct, f.err
}

type fakeJobs struct {
	mu         sync.Mutex
	err        error
	gotCompany uuid.UUID
	gotInput   usecase.JobInput
}

func (f *fakeJobs) SaveJob(_ context.Context, companyID, jobID uuid.UUID, in usecase.JobInput) (job.Aggregate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotCompany, f.gotInput = companyID, in
	if f.err != nil {
		return job.Aggregate{}, f.err
	}
	return job.Aggregate{Job: job.Job{
		ID:                     jobID,
		CompanyID:              companyID,
		Title:                  in.Title,
		Status:                 in.Status,
		WorkModality:           in.WorkModality,
		ApplicationDeadline:    in.ApplicationDeadline,
		CompletenessPercentage: 70,
	}}, nil
}

type fakeCompanies struct {
	mu    sync.Mutex
	err   error
	gotID uuid.UUID
	gotIn usecase.CompanyInput
}

func (f *fakeCompanies) SaveCompany(_ context.Context, companyID uuid.UUID, in usecase.CompanyInput) (company.Company, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gotID, f.gotIn = companyID, in
	if f.err != nil {
		return company.Company{}, f.err
	}
	return company.Company{ID: companyID, Name: in.Name, CompletenessPercentage: 45}, nil
}
