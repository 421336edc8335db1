package http

import (
	"github.com/gin-gonic/gin"

	"search-srv/internal/search"
	"search-srv/pkg/response"
	"search-srv/pkg/scope"
)

// Search godoc
// @Summary      Search products
// @Description  Full-text product search with filters, spelling correction and personalization
// @Tags         search
// @Produce      json
// @Param        q            query  string  true   "Search term (min 2 characters)"
// @Param        sort         query  string  false  "relevance | price_asc | price_desc | newest | oldest | popularity | rating"
// @Param        category_ids query  string  false  "Comma-separated category ids"
// @Param        brand_ids    query  string  false  "Comma-separated brand ids"
// @Param        price_min    query  number  false  "Minimum price"
// @Param        price_max    query  number  false  "Maximum price"
// @Param        rating_min   query  number  false  "Minimum average rating"
// @Param        discounted   query  bool    false  "Only discounted products"
// @Param        owner_only   query  bool    false  "Only the caller's own products"
// @Param        page         query  int     false  "Page number"
// @Param        page_size    query  int     false  "Page size (max 100)"
// @Success      200  {object}  searchResp
// @Failure      400  {object}  response.Resp
// @Failure      500  {object}  response.Resp
// @Router       /api/v1/products/search [get]
func (h handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processSearchRequest(c)
	if err != nil {
		response.Error(c, err, h.d)
		return
	}

	out, err := h.uc.Search(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "search.http.Search: %v", err)
		response.ErrorWithMap(c, err, mapErrors, h.d)
		return
	}

	if out.CacheHit {
		c.Header("X-Cache", "HIT")
	}
	response.JSON(c, newSearchResp(out))
}

// Suggest godoc
// @Summary      Autocomplete suggestions
// @Description  Product name, category, popular and recent search suggestions
// @Tags         search
// @Produce      json
// @Param        q  query  string  true  "Partial search term"
// @Success      200  {object}  response.Resp{data=suggestResp}
// @Router       /api/v1/products/search/suggestions [get]
func (h handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	out, err := h.uc.Suggest(ctx, sc, search.SuggestInput{Term: c.Query("q")})
	if err != nil {
		h.l.Errorf(ctx, "search.http.Suggest: %v", err)
		response.ErrorWithMap(c, err, mapErrors, h.d)
		return
	}

	response.OK(c, newSuggestResp(out))
}

// Expand godoc
// @Summary      Query expansions
// @Description  Alternate query terms derived from the tag graph
// @Tags         search
// @Produce      json
// @Param        q  query  string  true  "Search term"
// @Success      200  {object}  response.Resp{data=expandResp}
// @Router       /api/v1/products/search/expansions [get]
func (h handler) Expand(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Expand(ctx, search.ExpandInput{Term: c.Query("q")})
	if err != nil {
		h.l.Errorf(ctx, "search.http.Expand: %v", err)
		response.ErrorWithMap(c, err, mapErrors, h.d)
		return
	}

	response.OK(c, newExpandResp(out))
}
