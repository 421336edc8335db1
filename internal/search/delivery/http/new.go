package http

import (
	"github.com/gin-gonic/gin"

	"search-srv/internal/search"
	"search-srv/pkg/discord"
	"search-srv/pkg/log"
)

type Handler interface {
	Search(c *gin.Context)
	Suggest(c *gin.Context)
	Expand(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc search.UseCase
	d  discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc search.UseCase, d discord.IDiscord) Handler {
	return handler{
		l:  l,
		uc: uc,
		d:  d,
	}
}
