package repository

import (
	"context"
	"fmt"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/level"
	"talent-match/internal/domain/seeker"

	"github.com/google/uuid"
)

// CandidateRef is the cheap listing row used to build a candidate pool
// before any seeker is fully hydrated.
type CandidateRef struct {
	SeekerID           uuid.UUID
	Visibility         seeker.Visibility
	ShowDisabilityInfo bool
	HasProfile         bool
	FirstName          string
	LastName           string
	Headline           string
	RegionID           *uuid.UUID
	Completeness       int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CandidateFilter narrows the seekers listed for ranking against JobID.
// Only seekers with a profile who are visible to that job are returned:
// public ones, and applied_only ones holding an application for it. Limit
// caps the rows returned, newest first; zero or less returns every match.
type CandidateFilter struct {
	JobID uuid.UUID
	Limit int
}

type ProfileRepository interface {
	Get(ctx context.Context, seekerID uuid.UUID) (seeker.Aggregate, error)
	ListCandidateRefs(ctx context.Context, f CandidateFilter) ([]CandidateRef, error)
	SaveProfile(ctx context.Context, p seeker.Profile) (seeker.Profile, error)
	SavePreferences(ctx context.Context, seekerID uuid.UUID, prefs seeker.Preferences) error
	// Lock holds the profile row until the surrounding transaction ends.
	Lock(ctx context.Context, seekerID uuid.UUID) error
	UpdateCompleteness(ctx context.Context, seekerID uuid.UUID, pct int) error
}

type PostgresProfileRepository struct {
	db conn
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: conn{db: db}}
}

func (r *PostgresProfileRepository) Get(ctx context.Context, seekerID uuid.UUID) (seeker.Aggregate, error) {
	var agg seeker.Aggregate
	p := &agg.Profile

	row := r.db.QueryRow(ctx,
		`SELECT p.user_id, p.first_name, p.last_name, p.phone, p.region_id, p.headline, p.bio,
		        p.years_of_experience, p.has_cv, p.completeness_percentage, p.created_at, p.updated_at,
		        COALESCE(pr.profile_visibility, 'public'), COALESCE(pr.show_disability_info, false)
		 FROM job_seeker_profiles p
		 LEFT JOIN job_seeker_preferences pr ON pr.user_id = p.user_id
		 WHERE p.user_id = $1`,
		seekerID,
	)
	var vis string
	if err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.Phone, &p.RegionID, &p.Headline, &p.Bio,
		&p.YearsOfExperience, &p.HasCV, &p.CompletenessPercentage, &p.CreatedAt, &p.UpdatedAt,
		&vis, &agg.Preferences.ShowDisabilityInfo); err != nil {
		if isNoRows(err) {
			return seeker.Aggregate{}, ErrNotFound
		}
		return seeker.Aggregate{}, err
	}
	agg.Preferences.Visibility = seeker.Visibility(vis)

	var err error
	if p.Education, err = r.education(ctx, seekerID); err != nil {
		return seeker.Aggregate{}, err
	}
	if agg.Skills, err = r.skills(ctx, seekerID); err != nil {
		return seeker.Aggregate{}, err
	}
	if agg.Languages, err = r.languages(ctx, seekerID); err != nil {
		return seeker.Aggregate{}, err
	}
	if agg.Disability, err = r.disability(ctx, seekerID); err != nil {
		return seeker.Aggregate{}, err
	}
	return agg, nil
}

func (r *PostgresProfileRepository) education(ctx context.Context, seekerID uuid.UUID) ([]seeker.EducationRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT level, institution, completed
		 FROM education_records
		 WHERE user_id = $1
		 ORDER BY position ASC, id ASC`,
		seekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]seeker.EducationRecord, 0)
	for rows.Next() {
		var lvl string
		var e seeker.EducationRecord
		if err := rows.Scan(&lvl, &e.Institution, &e.Completed); err != nil {
			return nil, err
		}
		if e.Level, err = level.ParseEducation(lvl); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) skills(ctx context.Context, seekerID uuid.UUID) ([]seeker.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT us.skill_id, s.name, us.proficiency_level, us.years_experience
		 FROM user_skills us
		 JOIN skills s ON s.id = us.skill_id
		 WHERE us.user_id = $1
		 ORDER BY s.name ASC`,
		seekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]seeker.Skill, 0)
	for rows.Next() {
		var s seeker.Skill
		if err := rows.Scan(&s.SkillID, &s.SkillName, &s.Proficiency, &s.YearsOfExperience); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) languages(ctx context.Context, seekerID uuid.UUID) ([]seeker.Language, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ul.language_id, l.name, ul.proficiency
		 FROM user_languages ul
		 JOIN languages l ON l.id = ul.language_id
		 WHERE ul.user_id = $1
		 ORDER BY l.name ASC`,
		seekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]seeker.Language, 0)
	for rows.Next() {
		var l seeker.Language
		var lvl int
		if err := rows.Scan(&l.LanguageID, &l.LanguageName, &lvl); err != nil {
			return nil, err
		}
		l.Level = level.Language(lvl)
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresProfileRepository) disability(ctx context.Context, seekerID uuid.UUID) (*seeker.Disability, error) {
	row := r.db.QueryRow(ctx,
		`SELECT category, requires_accommodations, accommodations
		 FROM disability_profiles
		 WHERE user_id = $1`,
		seekerID,
	)
	var d seeker.Disability
	if err := row.Scan(&d.Category, &d.RequiresAccommodations, &d.Accommodations); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *PostgresProfileRepository) ListCandidateRefs(ctx context.Context, f CandidateFilter) ([]CandidateRef, error) {
	rows, err := r.db.Query(ctx,
		`SELECT u.id,
		        COALESCE(pr.profile_visibility, 'public'),
		        COALESCE(pr.show_disability_info, false),
		        true,
		        p.first_name, p.last_name, p.headline,
		        p.region_id,
		        p.completeness_percentage,
		        p.created_at,
		        p.updated_at
		 FROM users u
		 JOIN job_seeker_profiles p ON p.user_id = u.id
		 LEFT JOIN job_seeker_preferences pr ON pr.user_id = u.id
		 WHERE u.role = 'job_seeker'
		   AND (
		     COALESCE(pr.profile_visibility, 'public') = 'public'
		     OR (pr.profile_visibility = 'applied_only' AND EXISTS (
		       SELECT 1 FROM applications a WHERE a.job_id = $1 AND a.applicant_id = u.id
		     ))
		   )
		 ORDER BY p.updated_at DESC, u.id ASC
		 LIMIT $2`,
		f.JobID, limitArg(f.Limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]CandidateRef, 0)
	for rows.Next() {
		var c CandidateRef
		var vis string
		if err := rows.Scan(&c.SeekerID, &vis, &c.ShowDisabilityInfo, &c.HasProfile,
			&c.FirstName, &c.LastName, &c.Headline, &c.RegionID, &c.Completeness,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		c.Visibility = seeker.Visibility(vis)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveProfile upserts the profile row and replaces its education records.
// updated_at always advances so cached scores keyed on it are invalidated.
func (r *PostgresProfileRepository) SaveProfile(ctx context.Context, p seeker.Profile) (seeker.Profile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return seeker.Profile{}, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	row := tx.QueryRow(ctx,
		`INSERT INTO job_seeker_profiles (
			user_id, first_name, last_name, phone, region_id, headline, bio, years_of_experience, has_cv
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (user_id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			region_id = EXCLUDED.region_id,
			headline = EXCLUDED.headline,
			bio = EXCLUDED.bio,
			years_of_experience = EXCLUDED.years_of_experience,
			has_cv = EXCLUDED.has_cv,
			updated_at = clock_timestamp()
		RETURNING completeness_percentage, created_at, updated_at`,
		p.ID, p.FirstName, p.LastName, p.Phone, p.RegionID, p.Headline, p.Bio, p.YearsOfExperience, p.HasCV,
	)
	if err := row.Scan(&p.CompletenessPercentage, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if isForeignKeyViolation(err) {
			return seeker.Profile{}, fmt.Errorf("%w: user or region", ErrNotFound)
		}
		return seeker.Profile{}, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM education_records WHERE user_id = $1`, p.ID); err != nil {
		return seeker.Profile{}, err
	}
	for i, e := range p.Education {
		_, err := tx.Exec(ctx,
			`INSERT INTO education_records (id, user_id, level, institution, completed, position)
			 VALUES ($1,$2,$3,$4,$5,$6)`,
			uuid.New(), p.ID, e.Level.String(), e.Institution, e.Completed, i,
		)
		if err != nil {
			return seeker.Profile{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return seeker.Profile{}, err
	}
	return p, nil
}

func (r *PostgresProfileRepository) SavePreferences(ctx context.Context, seekerID uuid.UUID, prefs seeker.Preferences) error {
	return database.WithTx(ctx, r.db, func(tx database.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO job_seeker_preferences (user_id, profile_visibility, show_disability_info, updated_at)
			 VALUES ($1, $2, $3, clock_timestamp())
			 ON CONFLICT (user_id) DO UPDATE SET
				profile_visibility = EXCLUDED.profile_visibility,
				show_disability_info = EXCLUDED.show_disability_info,
				updated_at = EXCLUDED.updated_at`,
			seekerID, string(prefs.Visibility), prefs.ShowDisabilityInfo,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrNotFound
			}
			return err
		}
		return touchProfile(ctx, tx, seekerID)
	})
}

func (r *PostgresProfileRepository) Lock(ctx context.Context, seekerID uuid.UUID) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `SELECT user_id FROM job_seeker_profiles WHERE user_id = $1 FOR UPDATE`, seekerID).Scan(&id)
	if err != nil {
		if isNoRows(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresProfileRepository) UpdateCompleteness(ctx context.Context, seekerID uuid.UUID, pct int) error {
	n, err := r.db.Exec(ctx,
		`UPDATE job_seeker_profiles SET completeness_percentage = $1 WHERE user_id = $2`,
		pct, seekerID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// touchProfile advances the profile revision after a write to one of its relations.
func touchProfile(ctx context.Context, tx database.Tx, seekerID uuid.UUID) error {
	_, err := tx.Exec(ctx, `UPDATE job_seeker_profiles SET updated_at = clock_timestamp() WHERE user_id = $1`, seekerID)
	return err
}
