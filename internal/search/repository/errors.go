package repository

import "errors"

var (
	ErrFailedToSearch = errors.New("repository: failed to query candidates")
	ErrFailedToCount  = errors.New("repository: failed to count candidates")
	ErrFailedToGet    = errors.New("repository: failed to get products")
	ErrFailedToRecord = errors.New("repository: failed to record search")
	ErrCacheMiss      = errors.New("repository: cache miss")
	ErrCacheSetFailed = errors.New("repository: failed to set cache")
)
