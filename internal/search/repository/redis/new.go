package redis

import (
	"search-srv/internal/search/repository"
	"search-srv/pkg/log"
	pkgRedis "search-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger) repository.CacheRepository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
