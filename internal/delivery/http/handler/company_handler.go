package handler

import (
	"talent-match/internal/delivery/http/dto"
	"talent-match/internal/delivery/http/middleware"
	"talent-match/internal/pkg/response"
	"talent-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Save only accepts writes to the caller's own company.
func (h *CompanyHandler) Save(c fiber.Ctx) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}
	companyID, err := parseUUIDParam(c, "company_id")
	if err != nil {
		return err
	}
	if caller.CompanyID == nil || *caller.CompanyID != companyID {
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}

	var req dto.CompanyRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	saved, err := h.uc.SaveCompany(c.Context(), companyID, usecase.CompanyInput{
		Name:        req.Name,
		TaxID:       req.TaxID,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Address:     req.Address,
		Phone:       req.Phone,
		Email:       req.Email,
		RegionID:    req.RegionID,
	})
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.OK(c, dto.CompanyResponse{
		ID:                     saved.ID,
		Name:                   saved.Name,
		CompletenessPercentage: saved.CompletenessPercentage,
	})
}
