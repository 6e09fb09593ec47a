package repository

import (
	"context"

	"talent-match/internal/database"

	"github.com/google/uuid"
)

type UserSkill struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	SkillID          uuid.UUID
	SkillName        string
	ProficiencyLevel int
	YearsExperience  *int
}

// UserSkillRepository manages the seeker's skill set. Every write also
// advances the owning profile's updated_at in the same transaction.
type UserSkillRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error)
	Create(ctx context.Context, us UserSkill) (UserSkill, error)
	Update(ctx context.Context, us UserSkill) (UserSkill, error)
	DeleteUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error
}

const userSkillSelect = `SELECT us.id, us.user_id, us.skill_id, s.name, us.proficiency_level, us.years_experience
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id`

type PostgresUserSkillRepository struct {
	db conn
}

func NewPostgresUserSkillRepository(db database.DB) *PostgresUserSkillRepository {
	return &PostgresUserSkillRepository{db: conn{db: db}}
}

func scanUserSkill(row database.Row) (UserSkill, error) {
	var us UserSkill
	if err := row.Scan(&us.ID, &us.UserID, &us.SkillID, &us.SkillName, &us.ProficiencyLevel, &us.YearsExperience); err != nil {
		if isNoRows(err) {
			return UserSkill{}, ErrNotFound
		}
		return UserSkill{}, err
	}
	return us, nil
}

func (r *PostgresUserSkillRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]UserSkill, error) {
	rows, err := r.db.Query(ctx, userSkillSelect+`
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]UserSkill, 0)
	for rows.Next() {
		us, err := scanUserSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserSkillRepository) Create(ctx context.Context, us UserSkill) (UserSkill, error) {
	if us.ID == uuid.Nil {
		us.ID = uuid.New()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return UserSkill{}, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	_, err = tx.Exec(ctx,
		`INSERT INTO user_skills (id, user_id, skill_id, proficiency_level, years_experience)
		 VALUES ($1, $2, $3, $4, $5)`,
		us.ID, us.UserID, us.SkillID, us.ProficiencyLevel, us.YearsExperience,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return UserSkill{}, ErrDuplicate
		case isForeignKeyViolation(err):
			return UserSkill{}, ErrNotFound
		}
		return UserSkill{}, err
	}
	if err := touchProfile(ctx, tx, us.UserID); err != nil {
		return UserSkill{}, err
	}

	created, err := scanUserSkill(tx.QueryRow(ctx, userSkillSelect+`
		 WHERE us.id = $1 AND us.user_id = $2`,
		us.ID, us.UserID,
	))
	if err != nil {
		return UserSkill{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return UserSkill{}, err
	}
	return created, nil
}

func (r *PostgresUserSkillRepository) Update(ctx context.Context, us UserSkill) (UserSkill, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return UserSkill{}, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	rowsAffected, err := tx.Exec(ctx,
		`UPDATE user_skills
		 SET proficiency_level = $1, years_experience = $2
		 WHERE user_id = $3 AND skill_id = $4`,
		us.ProficiencyLevel, us.YearsExperience, us.UserID, us.SkillID,
	)
	if err != nil {
		return UserSkill{}, err
	}
	if rowsAffected == 0 {
		return UserSkill{}, ErrNotFound
	}
	if err := touchProfile(ctx, tx, us.UserID); err != nil {
		return UserSkill{}, err
	}

	updated, err := scanUserSkill(tx.QueryRow(ctx, userSkillSelect+`
		 WHERE us.user_id = $1 AND us.skill_id = $2`,
		us.UserID, us.SkillID,
	))
	if err != nil {
		return UserSkill{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return UserSkill{}, err
	}
	return updated, nil
}

func (r *PostgresUserSkillRepository) DeleteUserSkill(ctx context.Context, userID uuid.UUID, skillID uuid.UUID) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		n, err := tx.Exec(ctx,
			`DELETE FROM user_skills WHERE user_id = $1 AND skill_id = $2`,
			userID, skillID,
		)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrNotFound
		}
		return touchProfile(ctx, tx, userID)
	})
}
