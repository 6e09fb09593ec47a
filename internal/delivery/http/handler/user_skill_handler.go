package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type UserSkillHandler struct {
	uc usecase.ProfileUsecase
}

func NewUserSkillHandler(uc usecase.ProfileUsecase) *UserSkillHandler {
	return &UserSkillHandler{uc: uc}
}

func (h *UserSkillHandler) List(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	items, err := h.uc.ListSkills(c.Context(), caller.UserID)
	if err != nil {
		return mapUsecaseError(err)
	}

	res := make([]dto.UserSkillResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toUserSkillResponse(it))
	}
	return response.OK(c, res)
}

func (h *UserSkillHandler) Add(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req dto.AddUserSkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	created, err := h.uc.AddSkill(c.Context(), caller.UserID, usecase.AddUserSkillInput{
		SkillID:          req.SkillID,
		ProficiencyLevel: req.ProficiencyLevel,
		YearsExperience:  req.YearsExperience,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	sk := toUserSkillResponse(created.Skill)
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.UserSkillWriteResponse{
		Skill:                  &sk,
		CompletenessPercentage: created.CompletenessPercentage,
	})
}

func (h *UserSkillHandler) Update(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	skillID, err := parseUUIDParam(c, "skill_id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserSkillRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	updated, err := h.uc.UpdateSkill(c.Context(), caller.UserID, skillID, usecase.UpdateUserSkillInput{
		ProficiencyLevel: req.ProficiencyLevel,
		YearsExperience:  req.YearsExperience,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	sk := toUserSkillResponse(updated.Skill)
	return response.OK(c, dto.UserSkillWriteResponse{
		Skill:                  &sk,
		CompletenessPercentage: updated.CompletenessPercentage,
	})
}

func (h *UserSkillHandler) Delete(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	skillID, err := parseUUIDParam(c, "skill_id")
	if err != nil {
		return err
	}

	pct, err := h.uc.RemoveSkill(c.Context(), caller.UserID, skillID)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.OK(c, dto.UserSkillWriteResponse{CompletenessPercentage: pct})
}

func toUserSkillResponse(it usecase.UserSkillItem) dto.UserSkillResponse {
	return dto.UserSkillResponse{
		ID:               it.ID,
		SkillID:          it.SkillID,
		SkillName:        it.SkillName,
		ProficiencyLevel: it.ProficiencyLevel,
		YearsExperience:  it.YearsExperience,
	}
}
