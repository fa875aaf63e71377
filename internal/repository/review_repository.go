package repository

import (
	"context"

	"skillmatch-pro/internal/database"
	"skillmatch-pro/internal/domain/review"
)

type PostgresReviewRepository struct {
	db database.DB
}

func NewPostgresReviewRepository(db database.DB) *PostgresReviewRepository {
	return &PostgresReviewRepository{db: db}
}

func (r *PostgresReviewRepository) Create(ctx context.Context, rv review.Review) (review.Review, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO reviews (mentor_id, candidate_user_id, content, rating)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		rv.MentorID, rv.CandidateUserID, rv.Content, rv.Rating,
	)
	if err := row.Scan(&rv.ID, &rv.CreatedAt); err != nil {
		return review.Review{}, err
	}
	return rv, nil
}

func (r *PostgresReviewRepository) ListForCandidate(ctx context.Context, candidateUserID int64) ([]review.Review, error) {
	rows, err := r.db.Query(ctx,
		`SELECT r.id, r.mentor_id, r.candidate_user_id, r.content, r.rating,
		        u.name, u.email, r.created_at
		 FROM reviews r
		 JOIN users u ON u.id = r.mentor_id
		 WHERE r.candidate_user_id = $1
		 ORDER BY r.created_at DESC`,
		candidateUserID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]review.Review, 0)
	for rows.Next() {
		var rv review.Review
		if err := rows.Scan(
			&rv.ID, &rv.MentorID, &rv.CandidateUserID, &rv.Content, &rv.Rating,
			&rv.MentorName, &rv.MentorEmail, &rv.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

var _ review.Repository = (*PostgresReviewRepository)(nil)
