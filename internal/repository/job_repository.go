package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillmatch-pro/internal/database"
	"skillmatch-pro/internal/domain/job"

	"github.com/jackc/pgx/v5"
)

const jobSelect = `
	SELECT j.id,
	       j.recruiter_id,
	       COALESCE(j.title, ''),
	       COALESCE(j.description, ''),
	       COALESCE(j.required_skills, ''),
	       COALESCE(j.preferred_experience, ''),
	       u.name,
	       u.email,
	       j.created_at
	FROM jobs j
	JOIN users u ON u.id = j.recruiter_id`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	var id int64
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (recruiter_id, title, description, required_skills, preferred_experience)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		j.RecruiterID, j.Title, j.Description, j.RequiredSkills, j.PreferredExperience,
	)
	if err := row.Scan(&id); err != nil {
		return job.Job{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id int64) (job.Job, error) {
	row := r.db.QueryRow(ctx, jobSelect+` WHERE j.id = $1`, id)
	return scanJob(row)
}

func (r *PostgresJobRepository) Search(ctx context.Context, term string) ([]job.Job, error) {
	pattern := "%" + term + "%"
	rows, err := r.db.Query(ctx,
		jobSelect+`
		 WHERE lower(j.title) LIKE lower($1)
		    OR lower(j.description) LIKE lower($1)
		    OR lower(j.required_skills) LIKE lower($1)`,
		pattern,
	)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, jobSelect)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func (r *PostgresJobRepository) ListByRecruiter(ctx context.Context, recruiterID int64) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, jobSelect+` WHERE j.recruiter_id = $1`, recruiterID)
	if err != nil {
		return nil, err
	}
	return collectJobs(rows)
}

func collectJobs(rows database.Rows) ([]job.Job, error) {
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.RecruiterID, &j.Title, &j.Description,
		&j.RequiredSkills, &j.PreferredExperience,
		&j.RecruiterName, &j.RecruiterEmail, &j.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

var _ job.Repository = (*PostgresJobRepository)(nil)
