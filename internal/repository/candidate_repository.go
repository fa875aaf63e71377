package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillmatch-pro/internal/database"
	"skillmatch-pro/internal/domain/candidate"

	"github.com/jackc/pgx/v5"
)

const candidateSelect = `
	SELECT c.user_id,
	       COALESCE(c.skills, ''),
	       COALESCE(c.experience, ''),
	       COALESCE(c.projects, ''),
	       u.name,
	       u.email,
	       c.created_at,
	       c.updated_at
	FROM candidates c
	JOIN users u ON u.id = c.user_id`

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) GetByUserID(ctx context.Context, userID int64) (candidate.Profile, error) {
	row := r.db.QueryRow(ctx, candidateSelect+` WHERE c.user_id = $1`, userID)
	return scanCandidate(row)
}

func (r *PostgresCandidateRepository) Create(ctx context.Context, p candidate.Profile) (candidate.Profile, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidates (user_id, skills, experience, projects) VALUES ($1, $2, $3, $4)`,
		p.UserID, p.Skills, p.Experience, p.Projects,
	)
	if err != nil {
		return candidate.Profile{}, err
	}
	return r.GetByUserID(ctx, p.UserID)
}

func (r *PostgresCandidateRepository) Upsert(ctx context.Context, p candidate.Profile) (candidate.Profile, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidates (user_id, skills, experience, projects)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id)
		 DO UPDATE SET skills = EXCLUDED.skills,
		               experience = EXCLUDED.experience,
		               projects = EXCLUDED.projects,
		               updated_at = NOW()`,
		p.UserID, p.Skills, p.Experience, p.Projects,
	)
	if err != nil {
		return candidate.Profile{}, err
	}
	return r.GetByUserID(ctx, p.UserID)
}

func (r *PostgresCandidateRepository) Search(ctx context.Context, term string) ([]candidate.Profile, error) {
	pattern := "%" + term + "%"
	rows, err := r.db.Query(ctx,
		candidateSelect+`
		 WHERE lower(c.skills) LIKE lower($1)
		    OR lower(c.experience) LIKE lower($1)
		    OR lower(c.projects) LIKE lower($1)`,
		pattern,
	)
	if err != nil {
		return nil, err
	}
	return collectCandidates(rows)
}

func (r *PostgresCandidateRepository) ListAll(ctx context.Context) ([]candidate.Profile, error) {
	rows, err := r.db.Query(ctx, candidateSelect)
	if err != nil {
		return nil, err
	}
	return collectCandidates(rows)
}

func collectCandidates(rows database.Rows) ([]candidate.Profile, error) {
	defer rows.Close()

	out := make([]candidate.Profile, 0)
	for rows.Next() {
		p, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanCandidate(row database.Row) (candidate.Profile, error) {
	var p candidate.Profile
	err := row.Scan(&p.UserID, &p.Skills, &p.Experience, &p.Projects, &p.Name, &p.Email, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, candidate.ErrNotFound
		}
		return candidate.Profile{}, err
	}
	return p, nil
}

var _ candidate.Repository = (*PostgresCandidateRepository)(nil)
