package postgre

import (
	"database/sql"

	"search-srv/internal/search/repository"
	"search-srv/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New - Factory
func New(db *sql.DB, l log.Logger) repository.CatalogRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
