package http

import (
	"net/http"

	"search-srv/internal/search"
	pkgErrors "search-srv/pkg/errors"
	"search-srv/pkg/response"
)

var (
	errWrongQuery = pkgErrors.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
)

var mapErrors = response.ErrorMapping{
	search.ErrSearchFailed:    pkgErrors.NewHTTPError(http.StatusInternalServerError, "Search is temporarily unavailable"),
	search.ErrHydrationFailed: pkgErrors.NewHTTPError(http.StatusInternalServerError, "Search is temporarily unavailable"),
}
