package usecase

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"search-srv/internal/model"
	"search-srv/internal/search"
)

// personalize nudges relevance-sorted results toward the caller's recent
// interests. Boosts bend the existing order, they never replace it: an
// unboosted page keeps its order exactly, and products with equal boosts
// keep their relative order.
func (uc *implUsecase) personalize(ctx context.Context, userID int64, products []model.Product) []model.Product {
	if len(products) < 2 {
		return products
	}

	since := uc.clock().Add(-search.ActivityWindow)

	var viewedCats, clickedBrands []int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		viewedCats, err = uc.repo.ViewedCategoryIDs(egCtx, userID, since)
		return err
	})
	eg.Go(func() error {
		var err error
		clickedBrands, err = uc.repo.ClickedBrandIDs(egCtx, userID, since)
		return err
	})
	if err := eg.Wait(); err != nil {
		uc.l.Warnf(ctx, "search.usecase.personalize: %v", err)
		return products
	}
	if len(viewedCats) == 0 && len(clickedBrands) == 0 {
		return products
	}

	catSet := make(map[int64]struct{}, len(viewedCats))
	for _, id := range viewedCats {
		catSet[id] = struct{}{}
	}
	brandSet := make(map[int64]struct{}, len(clickedBrands))
	for _, id := range clickedBrands {
		brandSet[id] = struct{}{}
	}

	// Sort key: previous rank shrunk by the boost. Rank starts at 1 so a
	// boost always moves a product ahead of equal-rank neighbours.
	keys := make(map[int64]float64, len(products))
	for i, p := range products {
		boost := 0.0
		if _, ok := catSet[p.CategoryID]; ok {
			boost += search.CategoryBoost
		}
		if _, ok := brandSet[p.BrandID]; ok {
			boost += search.BrandBoost
		}
		if boost > search.MaxBoost {
			boost = search.MaxBoost
		}
		keys[p.ID] = float64(i+1) * (1 - boost*search.BoostWeight)
	}

	sort.SliceStable(products, func(i, j int) bool {
		return keys[products[i].ID] < keys[products[j].ID]
	})

	return products
}
