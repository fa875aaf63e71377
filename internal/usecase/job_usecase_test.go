package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"skillmatch-pro/internal/domain/job"
)

type fakeJobListCache struct {
	store    map[string][]byte
	deletes  []string
	getCalls int
}

func newFakeJobListCache() *fakeJobListCache {
	return &fakeJobListCache{store: make(map[string][]byte)}
}

func (f *fakeJobListCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	f.getCalls++
	b, ok := f.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (f *fakeJobListCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = b
	return nil
}

func (f *fakeJobListCache) DeleteByPattern(_ context.Context, pattern string) error {
	f.deletes = append(f.deletes, pattern)
	f.store = make(map[string][]byte)
	return nil
}

func TestJobs_Create_Validation(t *testing.T) {
	u := NewJobUsecase(&stubJobRepo{}, nil, nil)

	if _, err := u.Create(context.Background(), 0, CreateJobInput{Title: "t", Description: "d"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("got %v, want ErrUnauthorized", err)
	}
	if _, err := u.Create(context.Background(), 5, CreateJobInput{Title: "  ", Description: "d"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput for blank title", err)
	}
	if _, err := u.Create(context.Background(), 5, CreateJobInput{Title: "t", Description: ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput for blank description", err)
	}
}

func TestJobs_Create_InvalidatesListCache(t *testing.T) {
	cache := newFakeJobListCache()
	repo := &stubJobRepo{all: []job.Job{{ID: 1, Title: "Go Backend"}}}
	u := NewJobUsecase(repo, cache, nil)

	// Warm the list cache.
	if _, err := u.List(context.Background(), ""); err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(cache.store) == 0 {
		t.Fatalf("list response was not cached")
	}

	if _, err := u.Create(context.Background(), 5, CreateJobInput{Title: "New", Description: "role"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(cache.deletes) != 1 || cache.deletes[0] != jobListCachePattern {
		t.Fatalf("list cache not invalidated: %v", cache.deletes)
	}
	if len(cache.store) != 0 {
		t.Fatalf("stale list entries survived invalidation")
	}
}

func TestJobs_List_ServesFromCache(t *testing.T) {
	cache := newFakeJobListCache()
	repo := &stubJobRepo{all: []job.Job{{ID: 1, Title: "Go Backend"}}}
	u := NewJobUsecase(repo, cache, nil)

	first, err := u.List(context.Background(), "go")
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	// Repository results change; the cached response wins until TTL.
	repo.all = []job.Job{{ID: 2, Title: "changed"}}
	second, err := u.List(context.Background(), "go")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(second) != len(first) || second[0].ID != first[0].ID {
		t.Fatalf("cache bypassed: first=%+v second=%+v", first, second)
	}
}

func TestJobs_List_NilCachePassesThrough(t *testing.T) {
	repo := &stubJobRepo{all: []job.Job{{ID: 1}}}
	u := NewJobUsecase(repo, nil, nil)

	got, err := u.List(context.Background(), "")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected jobs: %+v", got)
	}
}

func TestJobListCacheKey_NormalizesSearchTerm(t *testing.T) {
	if jobListCacheKey("  Go   Backend ") != jobListCacheKey("go backend") {
		t.Fatalf("normalized terms must share a key")
	}
	if jobListCacheKey("go") == jobListCacheKey("rust") {
		t.Fatalf("distinct terms must not collide")
	}
}

func TestJobs_GetByID(t *testing.T) {
	repo := &stubJobRepo{jobs: map[int64]job.Job{1: {ID: 1, Title: "Go Backend"}}}
	u := NewJobUsecase(repo, nil, nil)

	j, err := u.GetByID(context.Background(), 1)
	if err != nil || j.Title != "Go Backend" {
		t.Fatalf("get: job=%+v err=%v", j, err)
	}
	if _, err := u.GetByID(context.Background(), 404); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("got %v, want ErrJobNotFound", err)
	}
}
