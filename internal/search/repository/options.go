package repository

import (
	"time"

	"search-srv/internal/search"
)

// Candidate is one scored row from the candidate query.
type Candidate struct {
	ProductID int64
	Score     float64
	Signals   search.Signals
}

// SearchCandidatesOptions parameterizes the scored-candidate query.
// Weights and Thresholds mirror the scoring contract so the store-side
// score expression and the in-process score function agree.
type SearchCandidatesOptions struct {
	Term       string
	Weights    search.Weights
	Thresholds search.Thresholds

	CategoryIDs    []int64
	BrandIDs       []int64
	PriceMin       *float64
	PriceMax       *float64
	RatingMin      *float64
	DiscountedOnly bool
	OwnerID        int64 // restrict to this owner when > 0

	Sort   search.SortMode
	Limit  int
	Offset int
}

// GetProductsOptions parameterizes hydration.
type GetProductsOptions struct {
	IDs      []int64
	CallerID int64 // wishlist membership is resolved for this caller when > 0
}

// RecordSearchOptions parameterizes the search-history write.
type RecordSearchOptions struct {
	ID         string
	UserID     int64
	DeviceID   string
	Term       string
	TotalCount int64
	SearchedAt time.Time
}
