package postgre

import (
	"context"
	"time"

	"search-srv/internal/search/repository"
)

const viewedCategoriesQuery = `
SELECT DISTINCT p.category_id
FROM product_views pv
JOIN products p ON p.id = pv.product_id
WHERE pv.user_id = $1
  AND pv.created_at >= $2
  AND p.category_id IS NOT NULL
ORDER BY p.category_id ASC`

const clickedBrandsQuery = `
SELECT DISTINCT p.brand_id
FROM product_clicks pc
JOIN products p ON p.id = pc.product_id
WHERE pc.user_id = $1
  AND pc.created_at >= $2
  AND p.brand_id IS NOT NULL
ORDER BY p.brand_id ASC`

func (r *implRepository) ViewedCategoryIDs(ctx context.Context, userID int64, since time.Time) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, viewedCategoriesQuery, userID, since)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.ViewedCategoryIDs.Query: %v", err)
		return nil, repository.ErrFailedToGet
	}
	defer rows.Close()

	return scanIDs(rows)
}

func (r *implRepository) ClickedBrandIDs(ctx context.Context, userID int64, since time.Time) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, clickedBrandsQuery, userID, since)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.ClickedBrandIDs.Query: %v", err)
		return nil, repository.ErrFailedToGet
	}
	defer rows.Close()

	return scanIDs(rows)
}
