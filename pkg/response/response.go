package response

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"search-srv/pkg/discord"
	pkgErrors "search-srv/pkg/errors"
)

// OK writes a success envelope with the given data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: CodeSuccess,
		Message:   "Success",
		Data:      data,
	})
}

// JSON writes the payload as-is with status 200. Used by endpoints whose
// response shape is its own envelope.
func JSON(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// Error writes an error response. HTTPError values keep their status code
// and message; anything else becomes a generic 500 and is reported to the
// Discord webhook when one is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		if httpErr.Code >= http.StatusInternalServerError {
			notifyDiscord(c, d, httpErr)
		}
		return
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   "Something went wrong",
	})
	notifyDiscord(c, d, err)
}

// ErrorWithMap maps the error through the mapping before writing it.
func ErrorWithMap(c *gin.Context, err error, mapping ErrorMapping, d discord.IDiscord) {
	if httpErr, ok := mapping[err]; ok {
		Error(c, httpErr, d)
		return
	}
	Error(c, err, d)
}

// PanicError writes a 500 for a recovered panic and reports it.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: CodeInternal,
		Message:   "Something went wrong",
	})
	notifyDiscord(c, d, fmt.Errorf("panic: %v", recovered))
}

// Unauthorized writes a 401 envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	})
}

func notifyDiscord(c *gin.Context, d discord.IDiscord, err error) {
	if d == nil {
		return
	}
	// Fire and forget; alerting must never block the response path.
	go func(ctx context.Context, method, path string) {
		_ = d.SendError(ctx, "API Error",
			fmt.Sprintf("%s %s", method, path), err)
	}(context.WithoutCancel(c.Request.Context()), c.Request.Method, c.Request.URL.Path)
}
