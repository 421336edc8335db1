package usecase

import (
	"context"
	"sync"
	"time"

	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

type noopLogger struct{}

func (noopLogger) Debug(context.Context, ...any) {}
func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Info(context.Context, ...any) {}
func (noopLogger) Infof(context.Context, string, ...any) {}
func (noopLogger) Warn(context.Context, ...any) {}
func (noopLogger) Warnf(context.Context, string, ...any) {}
func (noopLogger) Error(context.Context, ...any) {}
func (noopLogger) Errorf(context.Context, string, ...any) {}
func (noopLogger) Fatal(context.Context, ...any) {}
func (noopLogger) Fatalf(context.Context, string, ...any) {}

// fakeCatalogRepo delegates to optional function fields and counts calls.
type fakeCatalogRepo struct {
	mu    sync.Mutex
	calls map[string]int

	searchCandidatesFn   func(opts repository.SearchCandidatesOptions) ([]repository.Candidate, error)
	countCandidatesFn    func(opts repository.SearchCandidatesOptions) (int64, error)
	closestNameFn        func(term string, threshold float64) (string, error)
	getProductsFn        func(opts repository.GetProductsOptions) ([]model.Product, error)
	suggestNamesFn       func(term string, limit int) ([]string, error)
	suggestCategoriesFn  func(term string, limit int) ([]string, error)
	popularTermsFn       func(prefix string, limit int) ([]string, error)
	recentTermsFn        func(sc model.Scope, prefix string, limit int) ([]string, error)
	tagsMatchingWordsFn  func(words []string, limit int) ([]model.Tag, error)
	categoryIDsForTagsFn func(tagIDs []int64) ([]int64, error)
	siblingTagsFn        func(categoryIDs, excludeTagIDs []int64, limit int) ([]model.Tag, error)
	viewedCategoryIDsFn  func(userID int64, since time.Time) ([]int64, error)
	clickedBrandIDsFn    func(userID int64, since time.Time) ([]int64, error)
	recordSearchFn       func(opts repository.RecordSearchOptions) error
}

func (f *fakeCatalogRepo) called(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeCatalogRepo) callCount(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeCatalogRepo) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func (f *fakeCatalogRepo) SearchCandidates(_ context.Context, opts repository.SearchCandidatesOptions) ([]repository.Candidate, error) {
	f.called("SearchCandidates")
	if f.searchCandidatesFn != nil {
		return f.searchCandidatesFn(opts)
	}
	return nil, nil
}

func (f *fakeCatalogRepo) CountCandidates(_ context.Context, opts repository.SearchCandidatesOptions) (int64, error) {
	f.called("CountCandidates")
	if f.countCandidatesFn != nil {
		return f.countCandidatesFn(opts)
	}
	return 0, nil
}

func (f *fakeCatalogRepo) ClosestProductName(_ context.Context, term string, threshold float64) (string, error) {
	f.called("ClosestProductName")
	if f.closestNameFn != nil {
		return f.closestNameFn(term, threshold)
	}
	return "", nil
}

func (f *fakeCatalogRepo) GetProductsByIDs(_ context.Context, opts repository.GetProductsOptions) ([]model.Product, error) {
	f.called("GetProductsByIDs")
	if f.getProductsFn != nil {
		return f.getProductsFn(opts)
	}
	return nil, nil
}

func (f *fakeCatalogRepo) SuggestProductNames(_ context.Context, term string, limit int) ([]string, error) {
	f.called("SuggestProductNames")
	if f.suggestNamesFn != nil {
		return f.suggestNamesFn(term, limit)
	}
	return nil, nil
}

func (f *fakeCatalogRepo) SuggestCategories(_ context.Context, term string, limit int) ([]string, error) {
	f.called("SuggestCategories")
	if f.suggestCategoriesFn != nil {
		return f.suggestCategoriesFn(term, limit)
	}
	return nil, nil
}

func (f *fakeCatalogRepo) PopularSearchTerms(_ context.Context, prefix string, limit int) ([]string, error) {
	f.called("PopularSearchTerms")
	if f.popularTermsFn != nil {
		return f.popularTermsFn(prefix, limit)
	}
	return nil, nil
}

func (f *fakeCatalogRepo) RecentSearchTerms(_ context.Context, sc model.Scope, prefix string, limit int) ([]string, error) {
	f.called("RecentSearchTerms")
	if f.recentTermsFn != nil {
		return f.recentTermsFn(sc, prefix, limit)
	}
	return nil, nil
}

func (f *fakeCatalogRepo) TagsMatchingWords(_ context.Context, words []string, limit int) ([]model.Tag, error) {
	f.called("TagsMatchingWords")
	if f.tagsMatchingWordsFn != nil {
		return f.tagsMatchingWordsFn(words, limit)
	}
	return nil, nil
}

func (f *fakeCatalogRepo) CategoryIDsForTags(_ context.Context, tagIDs []int64) ([]int64, error) {
	f.called("CategoryIDsForTags")
	if f.categoryIDsForTagsFn != nil {
		return f.categoryIDsForTagsFn(tagIDs)
	}
	return nil, nil
}

func (f *fakeCatalogRepo) SiblingTags(_ context.Context, categoryIDs, excludeTagIDs []int64, limit int) ([]model.Tag, error) {
	f.called("SiblingTags")
	if f.siblingTagsFn != nil {
		return f.siblingTagsFn(categoryIDs, excludeTagIDs, limit)
	}
	return nil, nil
}

func (f *fakeCatalogRepo) ViewedCategoryIDs(_ context.Context, userID int64, since time.Time) ([]int64, error) {
	f.called("ViewedCategoryIDs")
	if f.viewedCategoryIDsFn != nil {
		return f.viewedCategoryIDsFn(userID, since)
	}
	return nil, nil
}

func (f *fakeCatalogRepo) ClickedBrandIDs(_ context.Context, userID int64, since time.Time) ([]int64, error) {
	f.called("ClickedBrandIDs")
	if f.clickedBrandIDsFn != nil {
		return f.clickedBrandIDsFn(userID, since)
	}
	return nil, nil
}

func (f *fakeCatalogRepo) RecordSearch(_ context.Context, opts repository.RecordSearchOptions) error {
	f.called("RecordSearch")
	if f.recordSearchFn != nil {
		return f.recordSearchFn(opts)
	}
	return nil
}

// fakeCacheRepo is an in-memory cache.
type fakeCacheRepo struct {
	mu    sync.Mutex
	store map[string][]byte

	gets, sets int
}

func newFakeCache() *fakeCacheRepo {
	return &fakeCacheRepo{store: map[string][]byte{}}
}

func (f *fakeCacheRepo) GetSearchResults(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if data, ok := f.store[key]; ok {
		return data, nil
	}
	return nil, repository.ErrCacheMiss
}

func (f *fakeCacheRepo) SaveSearchResults(_ context.Context, key string, data []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.store[key] = data
	return nil
}

func (f *fakeCacheRepo) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for k := range f.store {
		out = append(out, k)
	}
	return out
}

// fakePublisher records published events.
type fakePublisher struct {
	events chan search.SearchPerformedEvent
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{events: make(chan search.SearchPerformedEvent, 8)}
}

func (f *fakePublisher) PublishSearchPerformed(_ context.Context, event search.SearchPerformedEvent) error {
	f.events <- event
	return nil
}
