package search

import (
	"strings"
	"time"

	"search-srv/internal/model"
	"search-srv/pkg/paginator"
)

const (
	// MinTermLength is the minimum number of characters (after trimming)
	// a search term must have.
	MinTermLength = 2

	// MaxNameSuggestions is the max product-name suggestions returned.
	MaxNameSuggestions = 5
	// MaxCategorySuggestions is the max category suggestions returned.
	MaxCategorySuggestions = 3
	// MaxPopularSuggestions is the max popular-search suggestions returned.
	MaxPopularSuggestions = 5
	// MaxRecentSuggestions is the max own-history suggestions returned.
	MaxRecentSuggestions = 5

	// MinTagWordLength is the minimum word length considered for tag expansion.
	MinTagWordLength = 3
	// MaxMatchedTags is the max tags matched directly against the term.
	MaxMatchedTags = 5
	// MaxSiblingTags is the max sibling tags collected across categories.
	MaxSiblingTags = 8
	// MaxExpansionTerms is the max expansion terms returned.
	MaxExpansionTerms = 5

	// ActivityWindow is the hard window for click/view/personalization signals.
	ActivityWindow = 30 * 24 * time.Hour

	// CategoryBoost is the personalization boost for a viewed category.
	CategoryBoost = 0.5
	// BrandBoost is the personalization boost for a clicked brand.
	BrandBoost = 0.3
	// MaxBoost caps the combined personalization boost per product.
	MaxBoost = 0.8
	// BoostWeight scales how strongly the boost bends the existing order.
	BoostWeight = 0.3
)

// MsgTermTooShort is the user-facing message for rejected short terms.
const MsgTermTooShort = "Search term too short"

// SortMode determines the ordering of search results.
type SortMode string

const (
	SortRelevance  SortMode = "relevance"
	SortPriceAsc   SortMode = "price_asc"
	SortPriceDesc  SortMode = "price_desc"
	SortNewest     SortMode = "newest"
	SortOldest     SortMode = "oldest"
	SortPopularity SortMode = "popularity"
	SortRating     SortMode = "rating"
)

// ParseSortMode maps a raw string to a SortMode, defaulting to relevance.
func ParseSortMode(s string) SortMode {
	switch SortMode(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc, SortPriceDesc, SortNewest, SortOldest, SortPopularity, SortRating:
		return SortMode(strings.ToLower(strings.TrimSpace(s)))
	default:
		return SortRelevance
	}
}

// SearchInput is a normalized, immutable search request.
type SearchInput struct {
	Term           string
	Sort           SortMode
	CategoryIDs    []int64
	BrandIDs       []int64
	PriceMin       *float64
	PriceMax       *float64
	RatingMin      *float64
	DiscountedOnly bool
	OwnerOnly      bool
	Paginate       paginator.PaginateQuery
}

// SuggestInput is a request for autocomplete suggestions.
type SuggestInput struct {
	Term string
}

// ExpandInput is a request for semantic term expansion.
type ExpandInput struct {
	Term string
}

// AutoCorrection records an applied spelling correction.
type AutoCorrection struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// SearchOutput is the full search response envelope. It is cached as-is,
// so a cache hit reproduces the stored response byte for byte.
type SearchOutput struct {
	Success        bool            `json:"success"`
	Message        string          `json:"message"`
	Products       []model.Product `json:"products"`
	TotalCount     int64           `json:"total_count"`
	AutoCorrection *AutoCorrection `json:"auto_correction,omitempty"`
	DidYouMean     string          `json:"did_you_mean,omitempty"`
	CacheHit       bool            `json:"-"`
}

// SuggestOutput carries the four independent suggestion channels. A failed
// channel degrades to an empty list, never an error.
type SuggestOutput struct {
	Products   []string
	Categories []string
	Popular    []string
	Recent     []string
}

// ExpandOutput carries alternate query terms for broadening a search.
type ExpandOutput struct {
	Terms []string
}

// SearchPerformedEvent is published after each successful search so the
// consumer can maintain search history and the popular-search roll.
type SearchPerformedEvent struct {
	ID            string    `json:"id"`
	UserID        int64     `json:"user_id,omitempty"`
	DeviceID      string    `json:"device_id,omitempty"`
	Term          string    `json:"term"`
	CorrectedTerm string    `json:"corrected_term,omitempty"`
	TotalCount    int64     `json:"total_count"`
	SearchedAt    time.Time `json:"searched_at"`
}
