package job

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	Search(ctx context.Context, term string) ([]Job, error)
	ListAll(ctx context.Context) ([]Job, error)
	ListByRecruiter(ctx context.Context, recruiterID int64) ([]Job, error)
}
