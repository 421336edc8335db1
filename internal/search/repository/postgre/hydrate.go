package postgre

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"search-srv/internal/model"
	"search-srv/internal/search/repository"
)

// productsQuery loads the core rows plus brand, category, rating summary
// and wishlist membership in one round trip. Images and prices follow in
// two batched queries.
const productsQuery = `
SELECT p.id, p.name, p.status, p.type, p.category_id, p.brand_id, p.owner_id,
	p.offer_price, p.created_at,
	b.id, b.name,
	c.id, c.name,
	COALESCE(floor(rv.avg_rating), 0)::int AS avg_rating,
	COALESCE(rv.review_count, 0)::int AS review_count,
	(w.product_id IS NOT NULL) AS is_wishlisted
FROM products p
LEFT JOIN brands b ON b.id = p.brand_id
LEFT JOIN categories c ON c.id = p.category_id
LEFT JOIN LATERAL (
	SELECT avg(r.rating)::float8 AS avg_rating, count(*)::bigint AS review_count
	FROM reviews r WHERE r.product_id = p.id
) rv ON true
LEFT JOIN wishlist_items w ON w.product_id = p.id AND w.user_id = $2
WHERE p.id = ANY($1)`

const productImagesQuery = `
SELECT id, product_id, url, position
FROM product_images
WHERE product_id = ANY($1)
ORDER BY product_id, position ASC, id ASC`

// cheapestPricesQuery keeps the cheapest eligible price row per product.
const cheapestPricesQuery = `
SELECT DISTINCT ON (pp.product_id)
	pp.id, pp.product_id, pp.amount, pp.status, pp.price_type,
	pp.is_ask_for_price, pp.is_custom, pp.discount_pct
FROM product_prices pp
WHERE pp.product_id = ANY($1)
  AND pp.status = 'ACTIVE'
  AND pp.price_type = 'NORMAL_SELL'
  AND NOT pp.is_ask_for_price
  AND NOT pp.is_custom
ORDER BY pp.product_id, pp.amount ASC, pp.id ASC`

func (r *implRepository) GetProductsByIDs(ctx context.Context, opts repository.GetProductsOptions) ([]model.Product, error) {
	if len(opts.IDs) == 0 {
		return nil, nil
	}

	ids := pq.Array(opts.IDs)

	rows, err := r.db.QueryContext(ctx, productsQuery, ids, opts.CallerID)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.GetProductsByIDs.Query: %v", err)
		return nil, repository.ErrFailedToGet
	}
	defer rows.Close()

	var (
		products []model.Product
		byID     = make(map[int64]*model.Product)
	)
	for rows.Next() {
		// category_id and brand_id are nullable; zero means unset.
		var (
			p                  model.Product
			catID, brandID     sql.NullInt64
			joinBrand, joinCat sql.NullInt64
			brandName, catName sql.NullString
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Status, &p.Type, &catID, &brandID, &p.OwnerID,
			&p.OfferPrice, &p.CreatedAt,
			&joinBrand, &brandName,
			&joinCat, &catName,
			&p.AverageRating, &p.ReviewCount,
			&p.IsWishlisted,
		); err != nil {
			r.l.Errorf(ctx, "search.postgre.GetProductsByIDs.Scan: %v", err)
			return nil, repository.ErrFailedToGet
		}
		p.CategoryID = catID.Int64
		p.BrandID = brandID.Int64
		if joinBrand.Valid {
			p.Brand = &model.Brand{ID: joinBrand.Int64, Name: brandName.String}
		}
		if joinCat.Valid {
			p.Category = &model.Category{ID: joinCat.Int64, Name: catName.String}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "search.postgre.GetProductsByIDs.Rows: %v", err)
		return nil, repository.ErrFailedToGet
	}

	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	if err := r.attachImages(ctx, ids, byID); err != nil {
		return nil, err
	}
	if err := r.attachPrices(ctx, ids, byID); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *implRepository) attachImages(ctx context.Context, ids any, byID map[int64]*model.Product) error {
	rows, err := r.db.QueryContext(ctx, productImagesQuery, ids)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.attachImages.Query: %v", err)
		return repository.ErrFailedToGet
	}
	defer rows.Close()

	for rows.Next() {
		var img model.ProductImage
		if err := rows.Scan(&img.ID, &img.ProductID, &img.URL, &img.Position); err != nil {
			r.l.Errorf(ctx, "search.postgre.attachImages.Scan: %v", err)
			return repository.ErrFailedToGet
		}
		if p, ok := byID[img.ProductID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "search.postgre.attachImages.Rows: %v", err)
		return repository.ErrFailedToGet
	}

	return nil
}

func (r *implRepository) attachPrices(ctx context.Context, ids any, byID map[int64]*model.Product) error {
	rows, err := r.db.QueryContext(ctx, cheapestPricesQuery, ids)
	if err != nil {
		r.l.Errorf(ctx, "search.postgre.attachPrices.Query: %v", err)
		return repository.ErrFailedToGet
	}
	defer rows.Close()

	for rows.Next() {
		var pr model.ProductPrice
		if err := rows.Scan(&pr.ID, &pr.ProductID, &pr.Amount, &pr.Status, &pr.PriceType,
			&pr.IsAskForPrice, &pr.IsCustom, &pr.DiscountPct); err != nil {
			r.l.Errorf(ctx, "search.postgre.attachPrices.Scan: %v", err)
			return repository.ErrFailedToGet
		}
		if p, ok := byID[pr.ProductID]; ok {
			price := pr
			p.Price = &price
		}
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "search.postgre.attachPrices.Rows: %v", err)
		return repository.ErrFailedToGet
	}

	return nil
}
