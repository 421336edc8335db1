package http

import "github.com/gin-gonic/gin"

// MapSearchRoutes mounts the search endpoints on the products group.
func MapSearchRoutes(r *gin.RouterGroup, h Handler) {
	r.GET("/search", h.Search)
	r.GET("/search/suggestions", h.Suggest)
	r.GET("/search/expansions", h.Expand)
}
