package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) GetMatch(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	jobID, err := parseUUIDParam(c, "job_id")
	if err != nil {
		return err
	}

	res, err := h.uc.MatchScore(c.Context(), caller.UserID, jobID)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.OK(c, dto.MatchResponse{
		JobID:               jobID,
		Score:               res.Score,
		AlreadyApplied:      res.AlreadyApplied,
		JobMatchable:        res.JobMatchable,
		ProfileCompleteness: res.ProfileCompleteness,
		Breakdown:           toBreakdownResponse(res.Breakdown),
	})
}
