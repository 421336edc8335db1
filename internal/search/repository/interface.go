package repository

import (
	"context"
	"time"

	"search-srv/internal/model"
)

// CatalogRepository is the read interface over the relational catalog
// store. Nothing here mutates catalog data; RecordSearch is the only
// write and targets the search-history tables exclusively.
//
//go:generate mockery --name CatalogRepository
type CatalogRepository interface {
	// SearchCandidates returns one ordered page of scored candidates.
	SearchCandidates(ctx context.Context, opts SearchCandidatesOptions) ([]Candidate, error)
	// CountCandidates returns the total number of matching candidates.
	CountCandidates(ctx context.Context, opts SearchCandidatesOptions) (int64, error)
	// ClosestProductName finds the known product name nearest to the term
	// by trigram similarity. Returns "" when none clears the threshold.
	ClosestProductName(ctx context.Context, term string, threshold float64) (string, error)

	// GetProductsByIDs hydrates full product records. Order of the result
	// is not guaranteed to match ids.
	GetProductsByIDs(ctx context.Context, opts GetProductsOptions) ([]model.Product, error)

	// Suggestion channels.
	SuggestProductNames(ctx context.Context, term string, limit int) ([]string, error)
	SuggestCategories(ctx context.Context, term string, limit int) ([]string, error)
	PopularSearchTerms(ctx context.Context, prefix string, limit int) ([]string, error)
	RecentSearchTerms(ctx context.Context, sc model.Scope, prefix string, limit int) ([]string, error)

	// Tag graph.
	TagsMatchingWords(ctx context.Context, words []string, limit int) ([]model.Tag, error)
	CategoryIDsForTags(ctx context.Context, tagIDs []int64) ([]int64, error)
	SiblingTags(ctx context.Context, categoryIDs, excludeTagIDs []int64, limit int) ([]model.Tag, error)

	// Personalization signals, hard 30-day window enforced by `since`.
	ViewedCategoryIDs(ctx context.Context, userID int64, since time.Time) ([]int64, error)
	ClickedBrandIDs(ctx context.Context, userID int64, since time.Time) ([]int64, error)

	// RecordSearch persists a consumed search event.
	RecordSearch(ctx context.Context, opts RecordSearchOptions) error
}

// CacheRepository memoizes full search responses behind content-hash keys.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetSearchResults(ctx context.Context, cacheKey string) ([]byte, error)
	SaveSearchResults(ctx context.Context, cacheKey string, data []byte, ttl time.Duration) error
}
