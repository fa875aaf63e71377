package candidate

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("candidate not found")

type Repository interface {
	GetByUserID(ctx context.Context, userID int64) (Profile, error)
	Create(ctx context.Context, p Profile) (Profile, error)
	Upsert(ctx context.Context, p Profile) (Profile, error)
	Search(ctx context.Context, term string) ([]Profile, error)
	ListAll(ctx context.Context) ([]Profile, error)
}
