package redis

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns the host:port address string.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// redisImpl implements IRedis using go-redis.
type redisImpl struct {
	client *goredis.Client
}
