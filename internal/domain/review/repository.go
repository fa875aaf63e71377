package review

import "context"

type Repository interface {
	Create(ctx context.Context, r Review) (Review, error)
	ListForCandidate(ctx context.Context, candidateUserID int64) ([]Review, error)
}
