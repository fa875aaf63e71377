package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// JobListCache is the Redis-backed cache for job list and search
// responses. Implementations degrade to pass-through when the backing
// store is unreachable.
type JobListCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

const jobListCachePattern = "jobs:list:*"

func jobListCacheKey(search string) string {
	search = strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(search))), " ")
	sum := sha256.Sum256([]byte(search))
	return "jobs:list:" + hex.EncodeToString(sum[:])
}
