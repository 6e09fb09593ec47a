package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/domain/level"
	"talent-match/internal/domain/seeker"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) SaveProfile(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req dto.ProfileRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	in := usecase.ProfileInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		RegionID:          req.RegionID,
		Headline:          req.Headline,
		Bio:               req.Bio,
		YearsOfExperience: req.YearsOfExperience,
		HasCV:             req.HasCV,
		Education:         make([]seeker.EducationRecord, 0, len(req.Education)),
	}
	for _, e := range req.Education {
		lv, err := level.ParseEducation(e.Level)
		if err != nil {
			return mapUsecaseError(err)
		}
		in.Education = append(in.Education, seeker.EducationRecord{Level: lv, Institution: e.Institution, Completed: e.Completed})
	}

	p, err := h.uc.SaveProfile(c.Context(), caller.UserID, in)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.OK(c, dto.ProfileResponse{
		ID:                     p.ID,
		FirstName:              p.FirstName,
		LastName:               p.LastName,
		Phone:                  p.Phone,
		RegionID:               p.RegionID,
		Headline:               p.Headline,
		Bio:                    p.Bio,
		YearsOfExperience:      p.YearsOfExperience,
		HasCV:                  p.HasCV,
		CompletenessPercentage: p.CompletenessPercentage,
		UpdatedAt:              p.UpdatedAt,
	})
}

func (h *ProfileHandler) SavePreferences(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req dto.PreferencesRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	vis, err := seeker.ParseVisibility(req.Visibility)
	if err != nil {
		return mapUsecaseError(err)
	}

	res, err := h.uc.SavePreferences(c.Context(), caller.UserID, seeker.Preferences{Visibility: vis, ShowDisabilityInfo: req.ShowDisabilityInfo})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.OK(c, dto.PreferencesResponse{
		Visibility:             string(res.Preferences.Visibility),
		ShowDisabilityInfo:     res.Preferences.ShowDisabilityInfo,
		CompletenessPercentage: res.CompletenessPercentage,
	})
}
