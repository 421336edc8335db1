package http

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/pkg/scope"
)

// processSearchRequest parses the query string into a normalized search
// input. Malformed numeric parameters reject the request; the term itself
// is validated by the use case.
func (h handler) processSearchRequest(c *gin.Context) (model.Scope, search.SearchInput, error) {
	sc := scope.GetScopeFromContext(c.Request.Context())

	input := search.SearchInput{
		Term: c.Query("q"),
		Sort: search.ParseSortMode(c.Query("sort")),
	}

	var err error
	if input.CategoryIDs, err = parseIDList(c.Query("category_ids")); err != nil {
		return sc, input, errWrongQuery
	}
	if input.BrandIDs, err = parseIDList(c.Query("brand_ids")); err != nil {
		return sc, input, errWrongQuery
	}
	if input.PriceMin, err = parseOptFloat(c.Query("price_min")); err != nil {
		return sc, input, errWrongQuery
	}
	if input.PriceMax, err = parseOptFloat(c.Query("price_max")); err != nil {
		return sc, input, errWrongQuery
	}
	if input.RatingMin, err = parseOptFloat(c.Query("rating_min")); err != nil {
		return sc, input, errWrongQuery
	}
	if input.PriceMin != nil && input.PriceMax != nil && *input.PriceMin > *input.PriceMax {
		return sc, input, errWrongQuery
	}

	input.DiscountedOnly = parseBool(c.Query("discounted"))
	input.OwnerOnly = parseBool(c.Query("owner_only"))
	if input.OwnerOnly && sc.UserID == 0 {
		return sc, input, errWrongQuery
	}

	if input.Paginate.Page, err = parseOptInt(c.Query("page")); err != nil {
		return sc, input, errWrongQuery
	}
	if input.Paginate.PageSize, err = parseOptInt(c.Query("page_size")); err != nil {
		return sc, input, errWrongQuery
	}

	return sc, input, nil
}

func parseIDList(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, strconv.ErrSyntax
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func parseOptFloat(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, strconv.ErrSyntax
	}
	return &v, nil
}

func parseOptInt(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}
