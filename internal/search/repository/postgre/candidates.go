package postgre

import (
	"context"

	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

func (r *implRepository) SearchCandidates(ctx context.Context, opts repository.SearchCandidatesOptions) ([]repository.Candidate, error) {
	query, args := buildCandidateQuery(opts)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.SearchCandidates.Query: %v", err)
		return nil, repository.ErrFailedToSearch
	}
	defer rows.Close()

	var cands []repository.Candidate
	for rows.Next() {
		var (
			c        repository.Candidate
			phonetic int
			s        search.Signals
		)
		if err := rows.Scan(
			&c.ProductID,
			&s.LexicalRank,
			&s.NameSimilarity,
			&s.PrefixSimilarity,
			&phonetic,
			&s.BrandSimilarity,
			&s.Clicks30d,
			&s.Views30d,
			&s.AvgRating,
			&s.ReviewCount,
			&c.Score,
		); err != nil {
			r.l.Errorf(ctx, "search.postgre.SearchCandidates.Scan: %v", err)
			return nil, repository.ErrFailedToSearch
		}
		s.PhoneticMatch = phonetic == 1
		c.Signals = s
		cands = append(cands, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "search.postgre.SearchCandidates.Rows: %v", err)
		return nil, repository.ErrFailedToSearch
	}

	return cands, nil
}

func (r *implRepository) CountCandidates(ctx context.Context, opts repository.SearchCandidatesOptions) (int64, error) {
	query, args := buildCandidateCountQuery(opts)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "search.postgre.CountCandidates.Scan: %v", err)
		return 0, repository.ErrFailedToCount
	}

	return total, nil
}
