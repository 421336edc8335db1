package postgre

import (
	"context"

	"search-srv/internal/model"
	"search-srv/internal/search/repository"
)

// Name suggestions blend prefix matches with trigram matches so that both
// "iph" and "ipone" surface "iPhone 15 Pro".
const suggestNamesQuery = `
SELECT p.name
FROM products p
WHERE p.status = 'ACTIVE'
  AND p.deleted_at IS NULL
  AND (lower(p.name) LIKE lower($1) || '%' OR similarity(lower(p.name), lower($1)) > 0.2)
ORDER BY (lower(p.name) LIKE lower($1) || '%') DESC,
	similarity(lower(p.name), lower($1)) DESC,
	p.id ASC
LIMIT $2`

// Category matching is a substring test; similarity only orders the result
// so prefix matches and closer names come first.
const suggestCategoriesQuery = `
SELECT c.name
FROM categories c
WHERE c.deleted_at IS NULL
  AND lower(c.name) LIKE '%' || lower($1) || '%'
ORDER BY (lower(c.name) LIKE lower($1) || '%') DESC,
	similarity(lower(c.name), lower($1)) DESC,
	c.id ASC
LIMIT $2`

const popularTermsQuery = `
SELECT ps.term
FROM popular_searches ps
WHERE lower(ps.term) LIKE lower($1) || '%'
ORDER BY ps.search_count DESC, ps.last_searched_at DESC, ps.term ASC
LIMIT $2`

// Recent terms are grouped so a term searched many times appears once,
// at the position of its latest occurrence.
const recentTermsQuery = `
SELECT sh.term
FROM search_history sh
WHERE (sh.user_id = $1 OR ($1 = 0 AND sh.device_id = $2))
  AND lower(sh.term) LIKE lower($3) || '%'
GROUP BY sh.term
ORDER BY max(sh.created_at) DESC
LIMIT $4`

func (r *implRepository) SuggestProductNames(ctx context.Context, term string, limit int) ([]string, error) {
	return r.queryTerms(ctx, "SuggestProductNames", suggestNamesQuery, term, limit)
}

func (r *implRepository) SuggestCategories(ctx context.Context, term string, limit int) ([]string, error) {
	return r.queryTerms(ctx, "SuggestCategories", suggestCategoriesQuery, term, limit)
}

func (r *implRepository) PopularSearchTerms(ctx context.Context, prefix string, limit int) ([]string, error) {
	return r.queryTerms(ctx, "PopularSearchTerms", popularTermsQuery, prefix, limit)
}

func (r *implRepository) RecentSearchTerms(ctx context.Context, sc model.Scope, prefix string, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, recentTermsQuery, sc.UserID, sc.DeviceID, prefix, limit)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.RecentSearchTerms.Query: %v", err)
		return nil, repository.ErrFailedToGet
	}
	defer rows.Close()

	terms, err := scanTerms(rows)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.RecentSearchTerms.Scan: %v", err)
		return nil, repository.ErrFailedToGet
	}
	return terms, nil
}

func (r *implRepository) queryTerms(ctx context.Context, op, query, term string, limit int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, query, term, limit)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.%s.Query: %v", op, err)
		return nil, repository.ErrFailedToGet
	}
	defer rows.Close()

	terms, err := scanTerms(rows)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.%s.Scan: %v", op, err)
		return nil, repository.ErrFailedToGet
	}
	return terms, nil
}
