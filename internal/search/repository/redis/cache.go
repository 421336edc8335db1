package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"search-srv/internal/search/repository"
)

const searchKeyPrefix = "search"

func searchKey(cacheKey string) string {
	return fmt.Sprintf("%s:%s", searchKeyPrefix, cacheKey)
}

func (r *implRepository) GetSearchResults(ctx context.Context, cacheKey string) ([]byte, error) {
	val, err := r.redis.Get(ctx, searchKey(cacheKey))
	if errors.Is(err, goredis.Nil) {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		r.l.Warnf(ctx, "search.redis.GetSearchResults.Get: %v", err)
		return nil, repository.ErrCacheMiss
	}

	return []byte(val), nil
}

func (r *implRepository) SaveSearchResults(ctx context.Context, cacheKey string, data []byte, ttl time.Duration) error {
	if err := r.redis.Set(ctx, searchKey(cacheKey), data, ttl); err != nil {
		r.l.Warnf(ctx, "search.redis.SaveSearchResults.Set: %v", err)
		return repository.ErrCacheSetFailed
	}

	return nil
}
