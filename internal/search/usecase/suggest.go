package usecase

import (
	"context"

	"golang.org/x/sync/errgroup"

	"search-srv/internal/model"
	"search-srv/internal/search"
)

// Suggest fans the four suggestion channels out concurrently. A failed
// channel logs and degrades to an empty list; the aggregate never errors.
func (uc *implUsecase) Suggest(ctx context.Context, sc model.Scope, input search.SuggestInput) (search.SuggestOutput, error) {
	term := normalizeTerm(input.Term)
	if len([]rune(term)) < search.MinTermLength {
		return search.SuggestOutput{}, nil
	}

	var out search.SuggestOutput

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		names, err := uc.repo.SuggestProductNames(egCtx, term, search.MaxNameSuggestions)
		if err != nil {
			uc.l.Warnf(egCtx, "search.usecase.Suggest.names: %v", err)
			return nil
		}
		out.Products = names
		return nil
	})
	eg.Go(func() error {
		cats, err := uc.repo.SuggestCategories(egCtx, term, search.MaxCategorySuggestions)
		if err != nil {
			uc.l.Warnf(egCtx, "search.usecase.Suggest.categories: %v", err)
			return nil
		}
		out.Categories = cats
		return nil
	})
	eg.Go(func() error {
		popular, err := uc.repo.PopularSearchTerms(egCtx, term, search.MaxPopularSuggestions)
		if err != nil {
			uc.l.Warnf(egCtx, "search.usecase.Suggest.popular: %v", err)
			return nil
		}
		out.Popular = popular
		return nil
	})
	if !sc.IsAnonymous() {
		eg.Go(func() error {
			recent, err := uc.repo.RecentSearchTerms(egCtx, sc, term, search.MaxRecentSuggestions)
			if err != nil {
				uc.l.Warnf(egCtx, "search.usecase.Suggest.recent: %v", err)
				return nil
			}
			out.Recent = recent
			return nil
		})
	}

	// Channel errors never propagate, so Wait cannot fail.
	_ = eg.Wait()

	return out, nil
}
