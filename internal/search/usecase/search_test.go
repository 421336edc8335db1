package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"search-srv/config"
	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

func defaultSearchConfig() config.SearchConfig {
	return config.SearchConfig{
		LexicalWeight:    10,
		NameSimWeight:    5,
		PrefixSimWeight:  3,
		PhoneticWeight:   2,
		BrandSimWeight:   2,
		ClickWeight:      0.01,
		ViewWeight:       0.005,
		RatingWeight:     0.5,
		NameSimThreshold: 0.15,
		PrefixThreshold:  0.5,
		BrandThreshold:   0.3,
		CacheTTLSeconds:  300,
	}
}

func newTestUsecase(repo *fakeCatalogRepo, cache *fakeCacheRepo, pub search.EventPublisher) search.UseCase {
	var cacheRepo repository.CacheRepository
	if cache != nil {
		cacheRepo = cache
	}
	return New(noopLogger{}, repo, cacheRepo, pub, defaultSearchConfig())
}

func productIDs(products []model.Product) []int64 {
	ids := make([]int64, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestSearch_TermTooShort(t *testing.T) {
	repo := &fakeCatalogRepo{}
	cache := newFakeCache()
	uc := newTestUsecase(repo, cache, nil)

	for _, term := range []string{"", " ", "a", " a "} {
		out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Term: term})
		if err != nil {
			t.Fatalf("term %q: unexpected error: %v", term, err)
		}
		if out.Success {
			t.Errorf("term %q: expected Success=false", term)
		}
		if out.Message != search.MsgTermTooShort {
			t.Errorf("term %q: message = %q, want %q", term, out.Message, search.MsgTermTooShort)
		}
	}

	if repo.totalCalls() != 0 {
		t.Errorf("expected no store calls, got %d", repo.totalCalls())
	}
	if cache.gets != 0 {
		t.Errorf("expected no cache lookups, got %d", cache.gets)
	}
}

func TestSearch_HappyPath(t *testing.T) {
	repo := &fakeCatalogRepo{
		searchCandidatesFn: func(opts repository.SearchCandidatesOptions) ([]repository.Candidate, error) {
			return []repository.Candidate{
				{ProductID: 3, Score: 9},
				{ProductID: 1, Score: 5},
			}, nil
		},
		countCandidatesFn: func(opts repository.SearchCandidatesOptions) (int64, error) {
			return 12, nil
		},
		getProductsFn: func(opts repository.GetProductsOptions) ([]model.Product, error) {
			// Hydration returns rows in store order, not rank order.
			return []model.Product{{ID: 1, Name: "Cheap"}, {ID: 3, Name: "Best"}}, nil
		},
	}
	cache := newFakeCache()
	uc := newTestUsecase(repo, cache, nil)

	out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Term: "iphone"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Success {
		t.Error("expected Success=true")
	}
	if out.TotalCount != 12 {
		t.Errorf("TotalCount = %d, want 12", out.TotalCount)
	}

	ids := productIDs(out.Products)
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 1 {
		t.Errorf("product order = %v, want [3 1]", ids)
	}
	if out.Products[0].RelevanceScore != 9 || out.Products[1].RelevanceScore != 5 {
		t.Errorf("relevance scores not carried over: %+v", out.Products)
	}
	if cache.sets != 1 {
		t.Errorf("expected 1 cache store, got %d", cache.sets)
	}
}

func TestSearch_CacheHit(t *testing.T) {
	calls := 0
	repo := &fakeCatalogRepo{
		searchCandidatesFn: func(opts repository.SearchCandidatesOptions) ([]repository.Candidate, error) {
			calls++
			return []repository.Candidate{{ProductID: 1, Score: 2}}, nil
		},
		countCandidatesFn: func(opts repository.SearchCandidatesOptions) (int64, error) {
			return 1, nil
		},
		getProductsFn: func(opts repository.GetProductsOptions) ([]model.Product, error) {
			return []model.Product{{ID: 1, Name: "Thing"}}, nil
		},
	}
	cache := newFakeCache()
	uc := newTestUsecase(repo, cache, nil)

	first, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Term: "thing"})
	if err != nil {
		t.Fatalf("first search: %v", err)
	}
	if first.CacheHit {
		t.Error("first search should not be a cache hit")
	}

	second, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Term: "thing"})
	if err != nil {
		t.Fatalf("second search: %v", err)
	}
	if !second.CacheHit {
		t.Error("second search should be a cache hit")
	}
	if calls != 1 {
		t.Errorf("store queried %d times, want 1", calls)
	}
	if len(second.Products) != 1 || second.Products[0].ID != first.Products[0].ID {
		t.Errorf("cached response differs: %+v vs %+v", second.Products, first.Products)
	}
	if second.TotalCount != first.TotalCount {
		t.Errorf("cached TotalCount = %d, want %d", second.TotalCount, first.TotalCount)
	}
}

func TestSearch_AutoCorrection(t *testing.T) {
	repo := &fakeCatalogRepo{
		searchCandidatesFn: func(opts repository.SearchCandidatesOptions) ([]repository.Candidate, error) {
			if opts.Term == "iphone" {
				return []repository.Candidate{{ProductID: 9, Score: 4}}, nil
			}
			return nil, nil
		},
		countCandidatesFn: func(opts repository.SearchCandidatesOptions) (int64, error) {
			if opts.Term == "iphone" {
				return 1, nil
			}
			return 0, nil
		},
		closestNameFn: func(term string, threshold float64) (string, error) {
			return "iphone", nil
		},
		getProductsFn: func(opts repository.GetProductsOptions) ([]model.Product, error) {
			return []model.Product{{ID: 9, Name: "iPhone"}}, nil
		},
	}
	uc := newTestUsecase(repo, newFakeCache(), nil)

	out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Term: "ipone"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AutoCorrection == nil {
		t.Fatal("expected auto correction")
	}
	if out.AutoCorrection.From != "ipone" || out.AutoCorrection.To != "iphone" {
		t.Errorf("correction = %+v", out.AutoCorrection)
	}
	if out.DidYouMean != "" {
		t.Errorf("did_you_mean should be empty when correction applied, got %q", out.DidYouMean)
	}
	if out.TotalCount != 1 || len(out.Products) != 1 {
		t.Errorf("corrected search returned %d/%d results", len(out.Products), out.TotalCount)
	}
	// One-shot: the primary term and the corrected term, nothing further.
	if n := repo.callCount("ClosestProductName"); n != 1 {
		t.Errorf("correction lookups = %d, want 1", n)
	}
}

func TestSearch_DidYouMean(t *testing.T) {
	repo := &fakeCatalogRepo{
		closestNameFn: func(term string, threshold float64) (string, error) {
			return "macbook", nil
		},
	}
	uc := newTestUsecase(repo, newFakeCache(), nil)

	out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Term: "macbok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AutoCorrection != nil {
		t.Errorf("no correction should be applied, got %+v", out.AutoCorrection)
	}
	if out.DidYouMean != "macbook" {
		t.Errorf("did_you_mean = %q, want %q", out.DidYouMean, "macbook")
	}
	if out.TotalCount != 0 || len(out.Products) != 0 {
		t.Errorf("expected empty results, got %d/%d", len(out.Products), out.TotalCount)
	}
}

func TestSearch_StoreFailure(t *testing.T) {
	repo := &fakeCatalogRepo{
		countCandidatesFn: func(opts repository.SearchCandidatesOptions) (int64, error) {
			return 0, repository.ErrFailedToCount
		},
	}
	uc := newTestUsecase(repo, newFakeCache(), nil)

	_, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Term: "iphone"})
	if !errors.Is(err, search.ErrSearchFailed) {
		t.Errorf("err = %v, want ErrSearchFailed", err)
	}
}

func TestSearch_HydrationDropsVanished(t *testing.T) {
	repo := &fakeCatalogRepo{
		searchCandidatesFn: func(opts repository.SearchCandidatesOptions) ([]repository.Candidate, error) {
			return []repository.Candidate{{ProductID: 1, Score: 3}, {ProductID: 2, Score: 1}}, nil
		},
		countCandidatesFn: func(opts repository.SearchCandidatesOptions) (int64, error) {
			return 2, nil
		},
		getProductsFn: func(opts repository.GetProductsOptions) ([]model.Product, error) {
			// Product 1 was deleted between scoring and hydration.
			return []model.Product{{ID: 2}}, nil
		},
	}
	uc := newTestUsecase(repo, newFakeCache(), nil)

	out, err := uc.Search(context.Background(), model.Scope{}, search.SearchInput{Term: "gone"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ids := productIDs(out.Products); len(ids) != 1 || ids[0] != 2 {
		t.Errorf("products = %v, want [2]", ids)
	}
}

func TestSearch_Personalization(t *testing.T) {
	mkCandidates := func(n int) []repository.Candidate {
		cands := make([]repository.Candidate, n)
		for i := range cands {
			cands[i] = repository.Candidate{ProductID: int64(i + 1), Score: float64(n - i)}
		}
		return cands
	}

	t.Run("interest boost moves a distant product up", func(t *testing.T) {
		repo := &fakeCatalogRepo{
			searchCandidatesFn: func(opts repository.SearchCandidatesOptions) ([]repository.Candidate, error) {
				return mkCandidates(5), nil
			},
			countCandidatesFn: func(opts repository.SearchCandidatesOptions) (int64, error) { return 5, nil },
			getProductsFn: func(opts repository.GetProductsOptions) ([]model.Product, error) {
				products := make([]model.Product, 5)
				for i := range products {
					products[i] = model.Product{ID: int64(i + 1), CategoryID: 10, BrandID: 20}
				}
				// Product 5 matches both the viewed category and clicked brand.
				products[4].CategoryID = 200
				products[4].BrandID = 300
				return products, nil
			},
			viewedCategoryIDsFn: func(userID int64, since time.Time) ([]int64, error) {
				return []int64{200}, nil
			},
			clickedBrandIDsFn: func(userID int64, since time.Time) ([]int64, error) {
				return []int64{300}, nil
			},
		}
		uc := newTestUsecase(repo, newFakeCache(), nil)

		out, err := uc.Search(context.Background(), model.Scope{UserID: 7}, search.SearchInput{Term: "laptop"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int64{1, 2, 3, 5, 4}
		got := productIDs(out.Products)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order = %v, want %v", got, want)
			}
		}
	})

	t.Run("equal boosts keep the original order", func(t *testing.T) {
		repo := &fakeCatalogRepo{
			searchCandidatesFn: func(opts repository.SearchCandidatesOptions) ([]repository.Candidate, error) {
				return mkCandidates(4), nil
			},
			countCandidatesFn: func(opts repository.SearchCandidatesOptions) (int64, error) { return 4, nil },
			getProductsFn: func(opts repository.GetProductsOptions) ([]model.Product, error) {
				products := make([]model.Product, 4)
				for i := range products {
					products[i] = model.Product{ID: int64(i + 1), CategoryID: 200}
				}
				return products, nil
			},
			viewedCategoryIDsFn: func(userID int64, since time.Time) ([]int64, error) {
				return []int64{200}, nil
			},
		}
		uc := newTestUsecase(repo, newFakeCache(), nil)

		out, err := uc.Search(context.Background(), model.Scope{UserID: 7}, search.SearchInput{Term: "laptop"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []int64{1, 2, 3, 4}
		got := productIDs(out.Products)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order = %v, want %v", got, want)
			}
		}
	})

	t.Run("anonymous caller skips personalization", func(t *testing.T) {
		repo := &fakeCatalogRepo{
			searchCandidatesFn: func(opts repository.SearchCandidatesOptions) ([]repository.Candidate, error) {
				return mkCandidates(3), nil
			},
			countCandidatesFn: func(opts repository.SearchCandidatesOptions) (int64, error) { return 3, nil },
			getProductsFn: func(opts repository.GetProductsOptions) ([]model.Product, error) {
				return []model.Product{{ID: 1}, {ID: 2}, {ID: 3}}, nil
			},
		}
		uc := newTestUsecase(repo, newFakeCache(), nil)

		if _, err := uc.Search(context.Background(), model.Scope{DeviceID: "dev-1"}, search.SearchInput{Term: "laptop"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.callCount("ViewedCategoryIDs") != 0 || repo.callCount("ClickedBrandIDs") != 0 {
			t.Error("personalization signals should not be fetched for anonymous callers")
		}
	})
}

func TestSearch_PublishesEvent(t *testing.T) {
	repo := &fakeCatalogRepo{
		countCandidatesFn: func(opts repository.SearchCandidatesOptions) (int64, error) { return 0, nil },
		closestNameFn:     func(term string, threshold float64) (string, error) { return "", nil },
	}
	pub := newFakePublisher()
	uc := newTestUsecase(repo, newFakeCache(), pub)

	sc := model.Scope{UserID: 42, DeviceID: "dev-9"}
	if _, err := uc.Search(context.Background(), sc, search.SearchInput{Term: "camera"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case event := <-pub.events:
		if event.Term != "camera" {
			t.Errorf("event term = %q, want %q", event.Term, "camera")
		}
		if event.UserID != 42 || event.DeviceID != "dev-9" {
			t.Errorf("event identity = %d/%q", event.UserID, event.DeviceID)
		}
		if event.ID == "" || event.SearchedAt.IsZero() {
			t.Errorf("event missing id or timestamp: %+v", event)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
	}
}

func TestSearch_OwnerOnlyScopesQuery(t *testing.T) {
	var captured repository.SearchCandidatesOptions
	repo := &fakeCatalogRepo{
		searchCandidatesFn: func(opts repository.SearchCandidatesOptions) ([]repository.Candidate, error) {
			captured = opts
			return nil, nil
		},
		countCandidatesFn: func(opts repository.SearchCandidatesOptions) (int64, error) { return 0, nil },
	}
	uc := newTestUsecase(repo, newFakeCache(), nil)

	_, err := uc.Search(context.Background(), model.Scope{UserID: 8},
		search.SearchInput{Term: "mine", OwnerOnly: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if captured.OwnerID != 8 {
		t.Errorf("OwnerID = %d, want 8", captured.OwnerID)
	}
}

func TestCacheKey(t *testing.T) {
	base := search.SearchInput{Term: "iphone", Sort: search.SortRelevance, CategoryIDs: []int64{2, 1}}
	base.Paginate.Page = 1
	base.Paginate.PageSize = 20

	t.Run("filter order does not change the key", func(t *testing.T) {
		other := base
		other.CategoryIDs = []int64{1, 2}
		if cacheKey(model.Scope{}, base) != cacheKey(model.Scope{}, other) {
			t.Error("reordered filter ids produced a different key")
		}
	})

	t.Run("different page changes the key", func(t *testing.T) {
		other := base
		other.Paginate.Page = 2
		if cacheKey(model.Scope{}, base) == cacheKey(model.Scope{}, other) {
			t.Error("different page shared a key")
		}
	})

	t.Run("identified callers get their own key", func(t *testing.T) {
		anon := cacheKey(model.Scope{}, base)
		user := cacheKey(model.Scope{UserID: 5}, base)
		otherUser := cacheKey(model.Scope{UserID: 6}, base)
		if anon == user || user == otherUser {
			t.Error("caller identity not reflected in the key")
		}
	})

	t.Run("device id alone does not split the cache", func(t *testing.T) {
		a := cacheKey(model.Scope{DeviceID: "dev-1"}, base)
		b := cacheKey(model.Scope{DeviceID: "dev-2"}, base)
		if a != b {
			t.Error("anonymous devices should share cached results")
		}
	})
}
