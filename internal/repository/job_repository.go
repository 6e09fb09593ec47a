package repository

import (
	"context"
	"time"

	"talent-match/internal/database"
	"talent-match/internal/domain/job"
	"talent-match/internal/domain/level"

	"github.com/google/uuid"
)

// JobRef is the listing row for a posting; enough to filter, order and
// render a recommendation without loading requirement sets.
type JobRef struct {
	ID           uuid.UUID
	CompanyID    uuid.UUID
	CompanyName  string
	Title        string
	Status       job.Status
	RegionID     *uuid.UUID
	WorkModality job.WorkModality
	Deadline     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// JobFilter narrows the active postings listed for ranking. Limit caps the
// rows returned, newest first; zero or less returns every match.
type JobFilter struct {
	RegionID *uuid.UUID
	Modality job.WorkModality
	Now      time.Time
	Limit    int
}

type JobRepository interface {
	Get(ctx context.Context, jobID uuid.UUID) (job.Aggregate, error)
	ListActiveRefs(ctx context.Context, f JobFilter) ([]JobRef, error)
	Save(ctx context.Context, agg job.Aggregate) (job.Aggregate, error)
	UpdateCompleteness(ctx context.Context, jobID uuid.UUID, pct int) error
}

type PostgresJobRepository struct {
	db conn
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: conn{db: db}}
}

func (r *PostgresJobRepository) Get(ctx context.Context, jobID uuid.UUID) (job.Aggregate, error) {
	var agg job.Aggregate
	j := &agg.Job

	var status, modality, edu string
	row := r.db.QueryRow(ctx,
		`SELECT id, company_id, title, description, status, region_id, work_modality, is_remote_allowed,
		        salary_min, salary_max, years_experience_min, years_experience_max, age_min, age_max,
		        education_level, application_deadline, accommodations, completeness_percentage,
		        created_at, updated_at
		 FROM jobs
		 WHERE id = $1`,
		jobID,
	)
	if err := row.Scan(&j.ID, &j.CompanyID, &j.Title, &j.Description, &status, &j.RegionID, &modality, &j.IsRemoteAllowed,
		&j.SalaryMin, &j.SalaryMax, &j.YearsExperienceMin, &j.YearsExperienceMax, &j.AgeMin, &j.AgeMax,
		&edu, &j.ApplicationDeadline, &j.Accommodations, &j.CompletenessPercentage,
		&j.CreatedAt, &j.UpdatedAt); err != nil {
		if isNoRows(err) {
			return job.Aggregate{}, ErrNotFound
		}
		return job.Aggregate{}, err
	}
	j.Status = job.Status(status)
	j.WorkModality = job.WorkModality(modality)

	var err error
	if j.EducationLevel, err = level.ParseEducation(edu); err != nil {
		return job.Aggregate{}, err
	}
	if agg.RequiredSkills, err = r.skillSet(ctx, "job_required_skills", jobID); err != nil {
		return job.Aggregate{}, err
	}
	if agg.PreferredSkills, err = r.skillSet(ctx, "job_preferred_skills", jobID); err != nil {
		return job.Aggregate{}, err
	}
	if agg.RequiredLanguages, err = r.languageSet(ctx, jobID); err != nil {
		return job.Aggregate{}, err
	}
	return agg, nil
}

// table is one of two fixed junction table names, never caller input.
func (r *PostgresJobRepository) skillSet(ctx context.Context, table string, jobID uuid.UUID) ([]job.SkillRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT js.skill_id, s.name, js.minimum_proficiency
		 FROM `+table+` js
		 JOIN skills s ON s.id = js.skill_id
		 WHERE js.job_id = $1
		 ORDER BY s.name ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.SkillRequirement, 0)
	for rows.Next() {
		var req job.SkillRequirement
		if err := rows.Scan(&req.SkillID, &req.SkillName, &req.MinimumProficiency); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) languageSet(ctx context.Context, jobID uuid.UUID) ([]job.LanguageRequirement, error) {
	rows, err := r.db.Query(ctx,
		`SELECT jl.language_id, l.name, jl.minimum_proficiency
		 FROM job_required_languages jl
		 JOIN languages l ON l.id = jl.language_id
		 WHERE jl.job_id = $1
		 ORDER BY l.name ASC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.LanguageRequirement, 0)
	for rows.Next() {
		var req job.LanguageRequirement
		var lvl int
		if err := rows.Scan(&req.LanguageID, &req.LanguageName, &lvl); err != nil {
			return nil, err
		}
		req.MinimumLevel = level.Language(lvl)
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) ListActiveRefs(ctx context.Context, f JobFilter) ([]JobRef, error) {
	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}
	var modality *string
	if f.Modality != "" {
		m := string(f.Modality)
		modality = &m
	}

	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.company_id, COALESCE(c.name, ''), j.title, j.status, j.region_id, j.work_modality,
		        j.application_deadline, j.created_at, j.updated_at
		 FROM jobs j
		 LEFT JOIN companies c ON c.id = j.company_id
		 WHERE j.status = 'active'
		   AND j.application_deadline > $1
		   AND ($2::uuid IS NULL OR j.region_id = $2 OR j.is_remote_allowed)
		   AND ($3::text IS NULL OR j.work_modality = $3)
		 ORDER BY j.updated_at DESC, j.id ASC
		 LIMIT $4`,
		now, f.RegionID, modality, limitArg(f.Limit),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobRef, 0)
	for rows.Next() {
		var ref JobRef
		var status, mod string
		if err := rows.Scan(&ref.ID, &ref.CompanyID, &ref.CompanyName, &ref.Title, &status, &ref.RegionID, &mod,
			&ref.Deadline, &ref.CreatedAt, &ref.UpdatedAt); err != nil {
			return nil, err
		}
		ref.Status = job.Status(status)
		ref.WorkModality = job.WorkModality(mod)
		out = append(out, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// limitArg maps a non-positive limit to NULL, which Postgres reads as LIMIT ALL.
func limitArg(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}

// Save upserts the posting and replaces its requirement sets in one transaction.
func (r *PostgresJobRepository) Save(ctx context.Context, agg job.Aggregate) (job.Aggregate, error) {
	j := agg.Job
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.Status == "" {
		j.Status = job.StatusDraft
	}
	if j.WorkModality == "" {
		j.WorkModality = job.ModalityOnSite
	}
	accommodations := j.Accommodations
	if accommodations == nil {
		accommodations = []string{}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return job.Aggregate{}, err
	}
	defer func() { _ = tx.Rollback(context.Background()) }()

	row := tx.QueryRow(ctx,
		`INSERT INTO jobs (
			id, company_id, title, description, status, region_id, work_modality, is_remote_allowed,
			salary_min, salary_max, years_experience_min, years_experience_max, age_min, age_max,
			education_level, application_deadline, accommodations
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			status = EXCLUDED.status,
			region_id = EXCLUDED.region_id,
			work_modality = EXCLUDED.work_modality,
			is_remote_allowed = EXCLUDED.is_remote_allowed,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			years_experience_min = EXCLUDED.years_experience_min,
			years_experience_max = EXCLUDED.years_experience_max,
			age_min = EXCLUDED.age_min,
			age_max = EXCLUDED.age_max,
			education_level = EXCLUDED.education_level,
			application_deadline = EXCLUDED.application_deadline,
			accommodations = EXCLUDED.accommodations,
			updated_at = clock_timestamp()
		WHERE jobs.company_id = EXCLUDED.company_id
		RETURNING completeness_percentage, created_at, updated_at`,
		j.ID, j.CompanyID, j.Title, j.Description, string(j.Status), j.RegionID, string(j.WorkModality), j.IsRemoteAllowed,
		j.SalaryMin, j.SalaryMax, j.YearsExperienceMin, j.YearsExperienceMax, j.AgeMin, j.AgeMax,
		j.EducationLevel.String(), j.ApplicationDeadline, accommodations,
	)
	if err := row.Scan(&j.CompletenessPercentage, &j.CreatedAt, &j.UpdatedAt); err != nil {
		// no row back means the id exists under another company
		if isNoRows(err) || isForeignKeyViolation(err) {
			return job.Aggregate{}, ErrNotFound
		}
		return job.Aggregate{}, err
	}

	if err := replaceSkillSet(ctx, tx, "job_required_skills", j.ID, agg.RequiredSkills); err != nil {
		return job.Aggregate{}, err
	}
	if err := replaceSkillSet(ctx, tx, "job_preferred_skills", j.ID, agg.PreferredSkills); err != nil {
		return job.Aggregate{}, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM job_required_languages WHERE job_id = $1`, j.ID); err != nil {
		return job.Aggregate{}, err
	}
	for _, req := range agg.RequiredLanguages {
		_, err := tx.Exec(ctx,
			`INSERT INTO job_required_languages (job_id, language_id, minimum_proficiency)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (job_id, language_id) DO UPDATE SET minimum_proficiency = EXCLUDED.minimum_proficiency`,
			j.ID, req.LanguageID, int(req.MinimumLevel),
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return job.Aggregate{}, ErrNotFound
			}
			return job.Aggregate{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return job.Aggregate{}, err
	}
	agg.Job = j
	return agg, nil
}

func replaceSkillSet(ctx context.Context, tx database.Tx, table string, jobID uuid.UUID, reqs []job.SkillRequirement) error {
	if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE job_id = $1`, jobID); err != nil {
		return err
	}
	for _, it := range reqs {
		if it.SkillID == uuid.Nil {
			continue
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO `+table+` (job_id, skill_id, minimum_proficiency)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (job_id, skill_id) DO UPDATE SET minimum_proficiency = EXCLUDED.minimum_proficiency`,
			jobID, it.SkillID, it.MinimumProficiency,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrNotFound
			}
			return err
		}
	}
	return nil
}

func (r *PostgresJobRepository) UpdateCompleteness(ctx context.Context, jobID uuid.UUID, pct int) error {
	n, err := r.db.Exec(ctx, `UPDATE jobs SET completeness_percentage = $1 WHERE id = $2`, pct, jobID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
