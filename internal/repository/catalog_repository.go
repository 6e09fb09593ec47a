package repository

import (
	"context"

	"talent-match/internal/database"
	"talent-match/internal/domain/skill"

	"github.com/google/uuid"
)

// CatalogRepository reads the reference tables shared by seekers and jobs.
type CatalogRepository interface {
	ListSkills(ctx context.Context) ([]skill.Skill, error)
	SkillExists(ctx context.Context, id uuid.UUID) (bool, error)
	LanguageExists(ctx context.Context, id uuid.UUID) (bool, error)
	RegionExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresCatalogRepository struct {
	db database.DB
}

func NewPostgresCatalogRepository(db database.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{db: db}
}

func (r *PostgresCatalogRepository) ListSkills(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, category, created_at FROM skills ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCatalogRepository) SkillExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id)
}

func (r *PostgresCatalogRepository) LanguageExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM languages WHERE id = $1)`, id)
}

func (r *PostgresCatalogRepository) RegionExists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS(SELECT 1 FROM regions WHERE id = $1)`, id)
}

func (r *PostgresCatalogRepository) exists(ctx context.Context, q string, id uuid.UUID) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
