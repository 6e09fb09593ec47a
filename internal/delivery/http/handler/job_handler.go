package handler

import (
	"time"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/level"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc  usecase.JobUsecase
	now func() time.Time
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc, now: time.Now}
}

// Save creates or replaces the posting at :job_id on behalf of the caller's company.
func (h *JobHandler) Save(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	if caller.CompanyID == nil || *caller.CompanyID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	var req dto.JobRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	in, err := toJobInput(req)
	if err != nil {
		return mapUsecaseError(err)
	}

	saved, err := h.uc.SaveJob(c.Context(), *caller.CompanyID, jobID, in)
	if err != nil {
		return mapUsecaseError(err)
	}

	j := saved.Job
	return response.OK(c, dto.JobResponse{
		ID:                     j.ID,
		CompanyID:              j.CompanyID,
		Title:                  j.Title,
		Status:                 string(j.Status),
		WorkModality:           string(j.WorkModality),
		ApplicationDeadline:    j.ApplicationDeadline,
		Matchable:              j.IsMatchable(h.now()),
		CompletenessPercentage: j.CompletenessPercentage,
		UpdatedAt:              j.UpdatedAt,
	})
}

func toJobInput(req dto.JobRequest) (usecase.JobInput, error) {
	in := usecase.JobInput{
		Title:               req.Title,
		Description:         req.Description,
		RegionID:            req.RegionID,
		IsRemoteAllowed:     req.IsRemoteAllowed,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		YearsExperienceMin:  req.YearsExperienceMin,
		YearsExperienceMax:  req.YearsExperienceMax,
		AgeMin:              req.AgeMin,
		AgeMax:              req.AgeMax,
		ApplicationDeadline: req.ApplicationDeadline,
		Accommodations:      req.Accommodations,
	}

	if req.Status != "" {
		st, err := job.ParseStatus(req.Status)
		if err != nil {
			return usecase.JobInput{}, err
		}
		in.Status = st
	}
	if req.WorkModality != "" {
		m, err := job.ParseWorkModality(req.WorkModality)
		if err != nil {
			return usecase.JobInput{}, err
		}
		in.WorkModality = m
	}
	edu, err := level.ParseEducation(req.EducationLevel)
	if err != nil {
		return usecase.JobInput{}, err
	}
	in.EducationLevel = edu

	for _, r := range req.RequiredSkills {
		in.RequiredSkills = append(in.RequiredSkills, job.SkillRequirement{SkillID: r.SkillID, MinimumProficiency: r.MinimumProficiency})
	}
	for _, r := range req.PreferredSkills {
		in.PreferredSkills = append(in.PreferredSkills, job.SkillRequirement{SkillID: r.SkillID, MinimumProficiency: r.MinimumProficiency})
	}
	for _, r := range req.RequiredLanguages {
		lv, err := level.ParseLanguage(r.MinimumLevel)
		if err != nil {
			return usecase.JobInput{}, err
		}
		in.RequiredLanguages = append(in.RequiredLanguages, job.LanguageRequirement{LanguageID: r.LanguageID, MinimumLevel: lv})
	}
	return in, nil
}
