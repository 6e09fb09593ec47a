package handler

import (
	"context"
	"strings"
	"time"

	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/domain/job"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type RecommendationHandler struct {
	uc      usecase.RecommendationUsecase
	timeout time.Duration
}

// NewRecommendationHandler bounds every ranking request by timeout; zero
// leaves the request context untouched.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, timeout time.Duration) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, timeout: timeout}
}

func (h *RecommendationHandler) context(c fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Context())
	}
	return context.WithTimeout(c.Context(), h.timeout)
}

func (h *RecommendationHandler) RecommendedJobs(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	exclude, err := parseQueryBool(c, "exclude_applied")
	if err != nil {
		return err
	}
	filters := usecase.JobFilters{ExcludeApplied: exclude}
	if raw := strings.TrimSpace(c.Query("region_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return mapUsecaseError(usecase.ErrInvalidInput)
		}
		filters.RegionID = &id
	}
	if raw := strings.TrimSpace(c.Query("modality")); raw != "" {
		m, err := job.ParseWorkModality(raw)
		if err != nil {
			return mapUsecaseError(err)
		}
		filters.Modality = m
	}

	ctx, cancel := h.context(c)
	defer cancel()
	res, err := h.uc.RecommendedJobsForSeeker(ctx, caller.UserID, filters, page)
	if err != nil {
		return mapUsecaseError(err)
	}

	items := make([]dto.JobRecommendationResponse, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, dto.JobRecommendationResponse{
			JobID:        it.Job.ID,
			CompanyID:    it.Job.CompanyID,
			CompanyName:  it.Job.CompanyName,
			Title:        it.Job.Title,
			RegionID:     it.Job.RegionID,
			WorkModality: string(it.Job.WorkModality),
			Deadline:     it.Job.Deadline,
			Score:        it.Breakdown.Total,
			Breakdown:    toBreakdownResponse(it.Breakdown),
		})
	}
	paged := response.NewPaged(items, res.TotalCount, res.Limit, res.Offset)
	paged.Meta.PoolTruncated = res.PoolTruncated
	return response.OK(c, paged)
}

func (h *RecommendationHandler) Candidates(c fiber.Ctx) error {
	if _, err := callerFrom(c); err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	ctx, cancel := h.context(c)
	defer cancel()
	res, err := h.uc.RecommendedCandidatesForJob(ctx, jobID, page)
	if err != nil {
		return mapUsecaseError(err)
	}

	items := make([]dto.CandidateRecommendationResponse, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, dto.CandidateRecommendationResponse{
			SeekerID:            it.Candidate.SeekerID,
			FirstName:           it.Candidate.FirstName,
			LastName:            it.Candidate.LastName,
			Headline:            it.Candidate.Headline,
			RegionID:            it.Candidate.RegionID,
			ProfileCompleteness: it.Candidate.Completeness,
			Score:               it.Breakdown.Total,
			Breakdown:           toBreakdownResponse(it.Breakdown),
		})
	}
	paged := response.NewPaged(items, res.TotalCount, res.Limit, res.Offset)
	paged.Meta.PoolTruncated = res.PoolTruncated
	return response.OK(c, paged)
}
