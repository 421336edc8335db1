package postgre

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

// queryArgs collects positional arguments while the SQL text is assembled.
type queryArgs struct {
	args []any
}

func (q *queryArgs) add(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

// candidateFrom is the shared FROM clause of the candidate queries.
// act and rv are lateral so the 30-day counters and rating summary can be
// referenced from WHERE and ORDER BY.
const candidateFrom = `
FROM products p
LEFT JOIN brands b ON b.id = p.brand_id
LEFT JOIN LATERAL (
	SELECT
		(SELECT count(*) FROM product_clicks pc
		 WHERE pc.product_id = p.id AND pc.created_at >= now() - interval '30 days')::bigint AS clicks_30d,
		(SELECT count(*) FROM product_views pv
		 WHERE pv.product_id = p.id AND pv.created_at >= now() - interval '30 days')::bigint AS views_30d
) act ON true
LEFT JOIN LATERAL (
	SELECT avg(r.rating)::float8 AS avg_rating, count(*)::bigint AS review_count
	FROM reviews r WHERE r.product_id = p.id
) rv ON true`

// phoneticExpr matches when any term token of length >= 3 shares a
// double-metaphone code with any token of the product name.
func phoneticExpr(termPh string) string {
	return fmt.Sprintf(`EXISTS (
		SELECT 1
		FROM regexp_split_to_table(lower(%s), '\s+') AS qt
		CROSS JOIN regexp_split_to_table(lower(p.name), '\s+') AS nt
		WHERE length(qt) >= 3 AND dmetaphone(qt) = dmetaphone(nt)
	)`, termPh)
}

// eligibilityExpr restricts candidates to sellable, visible products with
// at least one ACTIVE normal-sell price row.
func eligibilityExpr(q *queryArgs) string {
	typesPh := q.add(pq.Array(model.SellableProductTypes))
	return fmt.Sprintf(`p.status = 'ACTIVE'
	AND p.deleted_at IS NULL
	AND p.type = ANY(%s)
	AND EXISTS (
		SELECT 1 FROM product_prices pp
		WHERE pp.product_id = p.id
		  AND pp.status = 'ACTIVE'
		  AND pp.price_type = 'NORMAL_SELL'
		  AND NOT pp.is_ask_for_price
		  AND NOT pp.is_custom
	)`, typesPh)
}

// matchExpr is the union of the independent matching channels. Any single
// channel qualifies a candidate.
func matchExpr(q *queryArgs, termPh string, th search.Thresholds) string {
	return fmt.Sprintf(`(
		p.search_vector @@ plainto_tsquery('english', %s)
		OR similarity(lower(p.name), lower(%s)) > %s
		OR word_similarity(lower(%s), lower(p.name)) > %s
		OR %s
		OR (b.name IS NOT NULL AND similarity(lower(b.name), lower(%s)) > %s)
	)`,
		termPh,
		termPh, q.add(th.NameSim),
		termPh, q.add(th.Prefix),
		phoneticExpr(termPh),
		termPh, q.add(th.Brand),
	)
}

// filterExprs appends the compiled request filters.
func filterExprs(q *queryArgs, opts repository.SearchCandidatesOptions) []string {
	var conds []string

	if len(opts.CategoryIDs) > 0 {
		conds = append(conds, fmt.Sprintf("p.category_id = ANY(%s)", q.add(pq.Array(opts.CategoryIDs))))
	}
	if len(opts.BrandIDs) > 0 {
		conds = append(conds, fmt.Sprintf("p.brand_id = ANY(%s)", q.add(pq.Array(opts.BrandIDs))))
	}
	if opts.PriceMin != nil {
		conds = append(conds, fmt.Sprintf("p.offer_price >= %s", q.add(*opts.PriceMin)))
	}
	if opts.PriceMax != nil {
		conds = append(conds, fmt.Sprintf("p.offer_price <= %s", q.add(*opts.PriceMax)))
	}
	if opts.RatingMin != nil {
		// Products without reviews count as rating 0.
		conds = append(conds, fmt.Sprintf("COALESCE(rv.avg_rating, 0) >= %s", q.add(*opts.RatingMin)))
	}
	if opts.DiscountedOnly {
		conds = append(conds, `EXISTS (
			SELECT 1 FROM product_prices pd
			WHERE pd.product_id = p.id AND pd.status = 'ACTIVE' AND pd.discount_pct > 0
		)`)
	}
	if opts.OwnerID > 0 {
		conds = append(conds, fmt.Sprintf("p.owner_id = %s", q.add(opts.OwnerID)))
	}

	return conds
}

// scoreExpr is the store-side mirror of search.Weights.Score. The weights
// arrive as parameters so store and process always agree.
func scoreExpr(q *queryArgs, termPh string, w search.Weights) string {
	return fmt.Sprintf(`(
		%s * ts_rank(p.search_vector, plainto_tsquery('english', %s))
		+ %s * similarity(lower(p.name), lower(%s))
		+ %s * word_similarity(lower(%s), lower(p.name))
		+ %s * (CASE WHEN %s THEN 1 ELSE 0 END)
		+ %s * COALESCE(similarity(lower(b.name), lower(%s)), 0)
		+ %s * act.clicks_30d
		+ %s * act.views_30d
		+ %s * COALESCE(rv.avg_rating, 0) * ln(COALESCE(rv.review_count, 0) + 1)
	)`,
		q.add(w.Lexical), termPh,
		q.add(w.NameSim), termPh,
		q.add(w.PrefixSim), termPh,
		q.add(w.Phonetic), phoneticExpr(termPh),
		q.add(w.BrandSim), termPh,
		q.add(w.Click),
		q.add(w.View),
		q.add(w.Rating),
	)
}

// orderClause maps a sort mode to a deterministic ORDER BY. The trailing
// p.id tiebreak keeps repeated calls stable for tied keys.
func orderClause(sort search.SortMode) string {
	switch sort {
	case search.SortPriceAsc:
		return "ORDER BY p.offer_price ASC, p.id ASC"
	case search.SortPriceDesc:
		return "ORDER BY p.offer_price DESC, p.id ASC"
	case search.SortNewest:
		return "ORDER BY p.created_at DESC, p.id ASC"
	case search.SortOldest:
		return "ORDER BY p.created_at ASC, p.id ASC"
	case search.SortPopularity:
		return "ORDER BY act.clicks_30d DESC, score DESC, p.id ASC"
	case search.SortRating:
		return "ORDER BY rv.avg_rating DESC NULLS LAST, rv.review_count DESC, p.id ASC"
	default:
		return "ORDER BY score DESC, p.id ASC"
	}
}

// buildCandidateQuery assembles the scored page query.
func buildCandidateQuery(opts repository.SearchCandidatesOptions) (string, []any) {
	q := &queryArgs{}
	termPh := q.add(opts.Term)

	score := scoreExpr(q, termPh, opts.Weights)

	var sb strings.Builder
	sb.WriteString("SELECT p.id,\n")
	sb.WriteString(fmt.Sprintf("\tts_rank(p.search_vector, plainto_tsquery('english', %s)) AS lexical_rank,\n", termPh))
	sb.WriteString(fmt.Sprintf("\tsimilarity(lower(p.name), lower(%s)) AS name_sim,\n", termPh))
	sb.WriteString(fmt.Sprintf("\tword_similarity(lower(%s), lower(p.name)) AS prefix_sim,\n", termPh))
	sb.WriteString(fmt.Sprintf("\tCASE WHEN %s THEN 1 ELSE 0 END AS phonetic_match,\n", phoneticExpr(termPh)))
	sb.WriteString(fmt.Sprintf("\tCOALESCE(similarity(lower(b.name), lower(%s)), 0) AS brand_sim,\n", termPh))
	sb.WriteString("\tact.clicks_30d, act.views_30d,\n")
	sb.WriteString("\tCOALESCE(rv.avg_rating, 0) AS avg_rating, COALESCE(rv.review_count, 0) AS review_count,\n")
	sb.WriteString("\t" + score + " AS score")
	sb.WriteString(candidateFrom)

	conds := []string{eligibilityExpr(q), matchExpr(q, termPh, opts.Thresholds)}
	conds = append(conds, filterExprs(q, opts)...)
	sb.WriteString("\nWHERE " + strings.Join(conds, "\nAND "))

	sb.WriteString("\n" + orderClause(opts.Sort))
	sb.WriteString(fmt.Sprintf("\nLIMIT %s OFFSET %s", q.add(opts.Limit), q.add(opts.Offset)))

	return sb.String(), q.args
}

// buildCandidateCountQuery assembles the total-match count query.
func buildCandidateCountQuery(opts repository.SearchCandidatesOptions) (string, []any) {
	q := &queryArgs{}
	termPh := q.add(opts.Term)

	var sb strings.Builder
	sb.WriteString("SELECT count(*)")
	sb.WriteString(candidateFrom)

	conds := []string{eligibilityExpr(q), matchExpr(q, termPh, opts.Thresholds)}
	conds = append(conds, filterExprs(q, opts)...)
	sb.WriteString("\nWHERE " + strings.Join(conds, "\nAND "))

	return sb.String(), q.args
}
