package postgre

import (
	"context"

	"search-srv/internal/search/repository"
)

const insertHistoryQuery = `
INSERT INTO search_history (id, user_id, device_id, term, total_count, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO NOTHING`

const upsertPopularQuery = `
INSERT INTO popular_searches (term, search_count, last_searched_at)
VALUES (lower($1), 1, $2)
ON CONFLICT (term) DO UPDATE
SET search_count = popular_searches.search_count + 1,
	last_searched_at = GREATEST(popular_searches.last_searched_at, EXCLUDED.last_searched_at)`

// RecordSearch writes the history row and bumps the popular-search counter
// in one transaction. Replayed events are absorbed by the id conflict.
func (r *implRepository) RecordSearch(ctx context.Context, opts repository.RecordSearchOptions) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.RecordSearch.Begin: %v", err)
		return repository.ErrFailedToRecord
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, insertHistoryQuery,
		opts.ID, opts.UserID, opts.DeviceID, opts.Term, opts.TotalCount, opts.SearchedAt)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.RecordSearch.Insert: %v", err)
		return repository.ErrFailedToRecord
	}

	// Only a first delivery bumps the counter.
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		if _, err := tx.ExecContext(ctx, upsertPopularQuery, opts.Term, opts.SearchedAt); err != nil {
			r.l.Errorf(ctx, "search.postgre.RecordSearch.Upsert: %v", err)
			return repository.ErrFailedToRecord
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "search.postgre.RecordSearch.Commit: %v", err)
		return repository.ErrFailedToRecord
	}

	return nil
}
