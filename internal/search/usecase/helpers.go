package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"search-srv/internal/model"
	"search-srv/internal/search"
	"search-srv/internal/search/repository"
)

// normalizeTerm trims and collapses internal whitespace. Case is kept for
// display; the store lowercases on its side.
func normalizeTerm(term string) string {
	return strings.Join(strings.Fields(term), " ")
}

// termWords returns the distinct lowercased words of the term that are long
// enough to be meaningful for tag matching.
func termWords(term string, minLen int) []string {
	seen := make(map[string]struct{})
	var words []string
	for _, w := range strings.Fields(strings.ToLower(term)) {
		if len([]rune(w)) < minLen {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

func sortedIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	out := make([]int64, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func joinIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ",")
}

func floatOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// cacheKey derives a stable content hash of the request. Filter id lists are
// sorted first so logically identical requests share a key. The caller id is
// included only for identified users; wishlist flags and personalization make
// their responses caller specific.
func cacheKey(sc model.Scope, input search.SearchInput) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(input.Term))
	sb.WriteString("|" + string(input.Sort))
	sb.WriteString("|" + joinIDs(sortedIDs(input.CategoryIDs)))
	sb.WriteString("|" + joinIDs(sortedIDs(input.BrandIDs)))
	sb.WriteString("|" + floatOrDash(input.PriceMin))
	sb.WriteString("|" + floatOrDash(input.PriceMax))
	sb.WriteString("|" + floatOrDash(input.RatingMin))
	sb.WriteString("|" + strconv.FormatBool(input.DiscountedOnly))
	sb.WriteString("|" + strconv.FormatBool(input.OwnerOnly))
	sb.WriteString(fmt.Sprintf("|%d|%d", input.Paginate.Page, input.Paginate.PageSize))
	if sc.UserID > 0 {
		sb.WriteString("|u" + strconv.FormatInt(sc.UserID, 10))
	}

	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// candidateOptions maps a validated request onto the store query options.
func (uc *implUsecase) candidateOptions(sc model.Scope, input search.SearchInput) repository.SearchCandidatesOptions {
	opts := repository.SearchCandidatesOptions{
		Term:           input.Term,
		Weights:        uc.weights,
		Thresholds:     uc.thresholds,
		CategoryIDs:    input.CategoryIDs,
		BrandIDs:       input.BrandIDs,
		PriceMin:       input.PriceMin,
		PriceMax:       input.PriceMax,
		RatingMin:      input.RatingMin,
		DiscountedOnly: input.DiscountedOnly,
		Sort:           input.Sort,
		Limit:          input.Paginate.PageSize,
		Offset:         input.Paginate.Offset(),
	}
	if input.OwnerOnly {
		opts.OwnerID = sc.UserID
	}
	return opts
}
