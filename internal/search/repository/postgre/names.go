package postgre

import (
	"context"
	"database/sql"
	"errors"

	"search-srv/internal/search/repository"
)

// closestNameQuery ranks eligible product names by trigram similarity to
// the term and keeps the single best one above the threshold.
const closestNameQuery = `
SELECT p.name
FROM products p
WHERE p.status = 'ACTIVE'
  AND p.deleted_at IS NULL
  AND similarity(lower(p.name), lower($1)) > $2
ORDER BY similarity(lower(p.name), lower($1)) DESC, p.id ASC
LIMIT 1`

func (r *implRepository) ClosestProductName(ctx context.Context, term string, threshold float64) (string, error) {
	var name string
	err := r.db.QueryRowContext(ctx, closestNameQuery, term, threshold).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.ClosestProductName.Scan: %v", err)
		return "", repository.ErrFailedToSearch
	}

	return name, nil
}
