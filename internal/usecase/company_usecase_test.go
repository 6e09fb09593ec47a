package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCompanies_SaveCompany(t *testing.T) {
	f := newFixture()
	uc := NewCompanyUsecase(fakeTx{f.s}, fakeCatalog{f.s})
	id := uuid.New()

	saved, err := uc.SaveCompany(context.Background(), id, CompanyInput{
		Name:     "Andes Logistics",
		TaxID:    "20123456789",
		Website:  "https://andes.example",
		RegionID: uuidPtr(f.region),
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if saved.CompletenessPercentage != 45 {
		t.Fatalf("expected 45, got %d", saved.CompletenessPercentage)
	}
	if f.s.companies[id].CompletenessPercentage != 45 {
		t.Fatalf("expected stored completeness 45, got %d", f.s.companies[id].CompletenessPercentage)
	}
}

func TestCompanies_SaveCompany_Errors(t *testing.T) {
	f := newFixture()
	uc := NewCompanyUsecase(fakeTx{f.s}, fakeCatalog{f.s})

	if _, err := uc.SaveCompany(context.Background(), uuid.New(), CompanyInput{RegionID: uuidPtr(uuid.New())}); !errors.Is(err, ErrRegionNotFound) {
		t.Fatalf("expected ErrRegionNotFound, got %v", err)
	}
	if _, err := uc.SaveCompany(context.Background(), uuid.Nil, CompanyInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCompanies_SaveCompany_RollsBackWhenCompletenessFails(t *testing.T) {
	f := newFixture()
	uc := NewCompanyUsecase(fakeTx{f.s}, fakeCatalog{f.s})
	id := uuid.New()
	f.s.completenessErr = errors.New("connection reset")

	if _, err := uc.SaveCompany(context.Background(), id, CompanyInput{Name: "Andes Logistics"}); !errors.Is(err, ErrDataAccess) {
		t.Fatalf("expected ErrDataAccess, got %v", err)
	}
	if _, ok := f.s.companies[id]; ok {
		t.Fatalf("expected no company row for %s after rollback", id)
	}
}
