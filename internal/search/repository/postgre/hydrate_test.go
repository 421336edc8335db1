package postgre

import (
	"context"
	"database/sql/driver"
	"testing"
	"time"

	"search-srv/internal/search/repository"
)

var productColumns = []string{
	"id", "name", "status", "type", "category_id", "brand_id", "owner_id",
	"offer_price", "created_at",
	"b_id", "b_name", "c_id", "c_name",
	"avg_rating", "review_count", "is_wishlisted",
}

func TestGetProductsByIDs(t *testing.T) {
	t.Run("null brand and category hydrate cleanly", func(t *testing.T) {
		db := newStubDB(map[string]*stubRows{
			"LEFT JOIN brands": {
				columns: productColumns,
				data: [][]driver.Value{{
					int64(1), "USB-C Cable", "ACTIVE", "PHYSICAL", nil, nil, int64(7),
					9.5, time.Now(),
					nil, nil, nil, nil,
					int64(0), int64(0), false,
				}},
			},
		})
		repo := New(db, noopLogger{})

		products, err := repo.GetProductsByIDs(context.Background(), repository.GetProductsOptions{IDs: []int64{1}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 1 {
			t.Fatalf("got %d products, want 1", len(products))
		}
		p := products[0]
		if p.BrandID != 0 || p.CategoryID != 0 {
			t.Errorf("ids should be zero when unset: brand=%d category=%d", p.BrandID, p.CategoryID)
		}
		if p.Brand != nil || p.Category != nil {
			t.Error("relations should stay nil when the columns are NULL")
		}
	})

	t.Run("brand and category attach when present", func(t *testing.T) {
		db := newStubDB(map[string]*stubRows{
			"LEFT JOIN brands": {
				columns: productColumns,
				data: [][]driver.Value{{
					int64(2), "iPhone 15", "ACTIVE", "PHYSICAL", int64(30), int64(4), int64(7),
					999.0, time.Now(),
					int64(4), "Apple", int64(30), "Smartphones",
					int64(4), int64(12), true,
				}},
			},
		})
		repo := New(db, noopLogger{})

		products, err := repo.GetProductsByIDs(context.Background(), repository.GetProductsOptions{IDs: []int64{2}, CallerID: 9})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(products) != 1 {
			t.Fatalf("got %d products, want 1", len(products))
		}
		p := products[0]
		if p.BrandID != 4 || p.CategoryID != 30 {
			t.Errorf("ids lost: brand=%d category=%d", p.BrandID, p.CategoryID)
		}
		if p.Brand == nil || p.Brand.Name != "Apple" {
			t.Errorf("brand = %+v, want Apple", p.Brand)
		}
		if p.Category == nil || p.Category.Name != "Smartphones" {
			t.Errorf("category = %+v, want Smartphones", p.Category)
		}
		if !p.IsWishlisted {
			t.Error("wishlist flag lost")
		}
	})
}
