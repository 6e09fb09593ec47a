package repository

import (
	"context"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	Exists(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error)
	JobIDsForApplicant(ctx context.Context, seekerID uuid.UUID) ([]uuid.UUID, error)
	ApplicantIDsForJob(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Exists(ctx context.Context, jobID, seekerID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, seekerID,
	)
	if err := row.Scan(&exists); err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresApplicationRepository) JobIDsForApplicant(ctx context.Context, seekerID uuid.UUID) ([]uuid.UUID, error) {
	return r.ids(ctx, `SELECT job_id FROM applications WHERE applicant_id = $1`, seekerID)
}

func (r *PostgresApplicationRepository) ApplicantIDsForJob(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	return r.ids(ctx, `SELECT applicant_id FROM applications WHERE job_id = $1`, jobID)
}

func (r *PostgresApplicationRepository) ids(ctx context.Context, q string, arg uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, q, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
