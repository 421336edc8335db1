package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

func TestSuggest(t *testing.T) {
	t.Run("short term returns empty without store calls", func(t *testing.T) {
		repo := &fakeCatalogRepo{}
		uc := newTestUsecase(repo, nil, nil)

		out, err := uc.Suggest(context.Background(), model.Scope{}, search.SuggestInput{Term: "i"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Products)+len(out.Categories)+len(out.Popular)+len(out.Recent) != 0 {
			t.Errorf("expected empty output, got %+v", out)
		}
		if repo.totalCalls() != 0 {
			t.Errorf("expected no store calls, got %d", repo.totalCalls())
		}
	})

	t.Run("all channels populated for identified caller", func(t *testing.T) {
		repo := &fakeCatalogRepo{
			suggestNamesFn: func(term string, limit int) ([]string, error) {
				return []string{"iPhone 15", "iPhone 15 Pro"}, nil
			},
			suggestCategoriesFn: func(term string, limit int) ([]string, error) {
				return []string{"Phones"}, nil
			},
			popularTermsFn: func(prefix string, limit int) ([]string, error) {
				return []string{"iphone case"}, nil
			},
			recentTermsFn: func(sc model.Scope, prefix string, limit int) ([]string, error) {
				return []string{"iphone 14"}, nil
			},
		}
		uc := newTestUsecase(repo, nil, nil)

		out, err := uc.Suggest(context.Background(), model.Scope{UserID: 3}, search.SuggestInput{Term: "iph"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out.Products, []string{"iPhone 15", "iPhone 15 Pro"}) {
			t.Errorf("products = %v", out.Products)
		}
		if !reflect.DeepEqual(out.Categories, []string{"Phones"}) {
			t.Errorf("categories = %v", out.Categories)
		}
		if !reflect.DeepEqual(out.Popular, []string{"iphone case"}) {
			t.Errorf("popular = %v", out.Popular)
		}
		if !reflect.DeepEqual(out.Recent, []string{"iphone 14"}) {
			t.Errorf("recent = %v", out.Recent)
		}
	})

	t.Run("anonymous caller skips recent channel", func(t *testing.T) {
		repo := &fakeCatalogRepo{}
		uc := newTestUsecase(repo, nil, nil)

		if _, err := uc.Suggest(context.Background(), model.Scope{}, search.SuggestInput{Term: "iph"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.callCount("RecentSearchTerms") != 0 {
			t.Error("recent terms should not be queried for anonymous callers")
		}
	})

	t.Run("failed channel degrades to empty", func(t *testing.T) {
		repo := &fakeCatalogRepo{
			suggestNamesFn: func(term string, limit int) ([]string, error) {
				return nil, repository.ErrFailedToGet
			},
			popularTermsFn: func(prefix string, limit int) ([]string, error) {
				return []string{"iphone"}, nil
			},
			recentTermsFn: func(sc model.Scope, prefix string, limit int) ([]string, error) {
				return nil, errors.New("history store down")
			},
		}
		uc := newTestUsecase(repo, nil, nil)

		out, err := uc.Suggest(context.Background(), model.Scope{UserID: 3}, search.SuggestInput{Term: "iph"})
		if err != nil {
			t.Fatalf("channel failure must not error the aggregate: %v", err)
		}
		if len(out.Products) != 0 || len(out.Recent) != 0 {
			t.Errorf("failed channels should be empty: %+v", out)
		}
		if !reflect.DeepEqual(out.Popular, []string{"iphone"}) {
			t.Errorf("healthy channel lost: %v", out.Popular)
		}
	})
}
