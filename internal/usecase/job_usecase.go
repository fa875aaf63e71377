package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"skillmatch-pro/internal/domain/job"
)

type CreateJobInput struct {
	Title               string
	Description         string
	RequiredSkills      string
	PreferredExperience string
}

type JobUsecase interface {
	Create(ctx context.Context, recruiterID int64, in CreateJobInput) (job.Job, error)
	GetByID(ctx context.Context, id int64) (job.Job, error)
	List(ctx context.Context, search string) ([]job.Job, error)
}

type Jobs struct {
	jobs   job.Repository
	cache  JobListCache
	logger *log.Logger
}

func NewJobUsecase(jobs job.Repository, cache JobListCache, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, logger: logger}
}

func (u *Jobs) Create(ctx context.Context, recruiterID int64, in CreateJobInput) (job.Job, error) {
	if recruiterID <= 0 {
		return job.Job{}, ErrUnauthorized
	}
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" {
		return job.Job{}, ErrInvalidInput
	}

	created, err := u.jobs.Create(ctx, job.Job{
		RecruiterID:         recruiterID,
		Title:               title,
		Description:         description,
		RequiredSkills:      in.RequiredSkills,
		PreferredExperience: in.PreferredExperience,
	})
	if err != nil {
		return job.Job{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, jobListCachePattern); err != nil && u.logger != nil {
			u.logger.Printf("[Jobs] list cache invalidation failed err=%v", err)
		}
	}

	return created, nil
}

func (u *Jobs) GetByID(ctx context.Context, id int64) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) List(ctx context.Context, search string) ([]job.Job, error) {
	search = strings.TrimSpace(search)
	key := jobListCacheKey(search)

	if u.cache != nil {
		var cached []job.Job
		if ok, err := u.cache.GetJSON(ctx, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	var (
		out []job.Job
		err error
	)
	if search != "" {
		out, err = u.jobs.Search(ctx, search)
	} else {
		out, err = u.jobs.ListAll(ctx)
	}
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err != nil && u.logger != nil {
			u.logger.Printf("[Jobs] list cache write failed key=%s err=%v", key, err)
		}
	}

	return out, nil
}
