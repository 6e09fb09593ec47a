package usecase

import (
	"context"
	"errors"

	"talent-match/internal/domain/company"
	"talent-match/internal/domain/completeness"
	"talent-match/internal/repository"

	"github.com/google/uuid"
)

type CompanyInput struct {
	Name        string
	TaxID       string
	Description string
	Website     string
	LogoURL     string
	Address     string
	Phone       string
	Email       string
	RegionID    *uuid.UUID
}

type CompanyUsecase interface {
	SaveCompany(ctx context.Context, companyID uuid.UUID, in CompanyInput) (company.Company, error)
}

type Companies struct {
	tx      repository.Transactor
	catalog repository.CatalogRepository
}

func NewCompanyUsecase(tx repository.Transactor, catalog repository.CatalogRepository) *Companies {
	return &Companies{tx: tx, catalog: catalog}
}

// SaveCompany upserts the company and its completeness in one transaction.
func (u *Companies) SaveCompany(ctx context.Context, companyID uuid.UUID, in CompanyInput) (company.Company, error) {
	if companyID == uuid.Nil {
		return company.Company{}, ErrInvalidInput
	}
	if in.RegionID != nil && *in.RegionID != uuid.Nil {
		ok, err := u.catalog.RegionExists(ctx, *in.RegionID)
		if err != nil {
			return company.Company{}, dataAccess("region exists", err)
		}
		if !ok {
			return company.Company{}, ErrRegionNotFound
		}
	}

	var saved company.Company
	err := u.tx.InTx(ctx, func(s repository.Stores) error {
		var err error
		saved, err = s.Companies.Save(ctx, company.Company{
			ID:          companyID,
			Name:        in.Name,
			TaxID:       in.TaxID,
			Description: in.Description,
			Website:     in.Website,
			LogoURL:     in.LogoURL,
			Address:     in.Address,
			Phone:       in.Phone,
			Email:       in.Email,
			RegionID:    in.RegionID,
		})
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrRegionNotFound
			}
			return dataAccess("save company", err)
		}

		saved.CompletenessPercentage = completeness.Company(saved)
		if err := s.Companies.UpdateCompleteness(ctx, companyID, saved.CompletenessPercentage); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrCompanyNotFound
			}
			return dataAccess("update company completeness", err)
		}
		return nil
	})
	if err != nil {
		return company.Company{}, txError("company transaction", err)
	}
	return saved, nil
}
