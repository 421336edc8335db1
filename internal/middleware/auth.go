package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"search-srv/internal/model"
	"search-srv/pkg/scope"
)

// DeviceIDHeader carries the anonymous device identity. It keeps recent
// searches working for logged-out callers.
const DeviceIDHeader = "X-Device-ID"

// OptionalAuth resolves the caller identity without ever rejecting the
// request. Search is a public surface: a valid bearer token yields an
// identified scope, anything else falls back to the device id or the
// anonymous scope.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc := model.Scope{
			DeviceID: strings.TrimSpace(c.GetHeader(DeviceIDHeader)),
		}

		if tokenString := bearerToken(c.GetHeader("Authorization")); tokenString != "" {
			claims, err := m.jwtManager.Verify(tokenString)
			if err != nil {
				m.l.Debugf(c.Request.Context(), "middleware.OptionalAuth.Verify: %v", err)
			} else {
				sc.UserID = claims.UserID
				if claims.DeviceID != "" {
					sc.DeviceID = claims.DeviceID
				}
			}
		}

		ctx := scope.SetScopeToContext(c.Request.Context(), sc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header. Both
// "Bearer <token>" and a plain token are accepted.
func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return header[7:]
	}
	return header
}
