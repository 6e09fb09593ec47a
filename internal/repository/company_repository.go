package repository

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/domain/company"

	"github.com/google/uuid"
)

type CompanyRepository interface {
	Get(ctx context.Context, companyID uuid.UUID) (company.Company, error)
	Save(ctx context.Context, c company.Company) (company.Company, error)
	UpdateCompleteness(ctx context.Context, companyID uuid.UUID, pct int) error
}

type PostgresCompanyRepository struct {
	db conn
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: conn{db: db}}
}

func (r *PostgresCompanyRepository) Get(ctx context.Context, companyID uuid.UUID) (company.Company, error) {
	var c company.Company
	row := r.db.QueryRow(ctx,
		`SELECT id, name, tax_id, description, website, logo_url, address, phone, email, region_id,
		        completeness_percentage, created_at, updated_at
		 FROM companies
		 WHERE id = $1`,
		companyID,
	)
	if err := row.Scan(&c.ID, &c.Name, &c.TaxID, &c.Description, &c.Website, &c.LogoURL, &c.Address, &c.Phone, &c.Email,
		&c.RegionID, &c.CompletenessPercentage, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if isNoRows(err) {
			return company.Company{}, ErrNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

func (r *PostgresCompanyRepository) Save(ctx context.Context, c company.Company) (company.Company, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO companies (id, name, tax_id, description, website, logo_url, address, phone, email, region_id)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			tax_id = EXCLUDED.tax_id,
			description = EXCLUDED.description,
			website = EXCLUDED.website,
			logo_url = EXCLUDED.logo_url,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			region_id = EXCLUDED.region_id,
			updated_at = clock_timestamp()
		 RETURNING completeness_percentage, created_at, updated_at`,
		c.ID, c.Name, c.TaxID, c.Description, c.Website, c.LogoURL, c.Address, c.Phone, c.Email, c.RegionID,
	)
	if err := row.Scan(&c.CompletenessPercentage, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return company.Company{}, ErrNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}

func (r *PostgresCompanyRepository) UpdateCompleteness(ctx context.Context, companyID uuid.UUID, pct int) error {
	n, err := r.db.Exec(ctx, `UPDATE companies SET completeness_percentage = $1 WHERE id = $2`, pct, companyID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
