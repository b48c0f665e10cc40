package categories

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

// RegisterRoutes registers category routes. The feed shares the
// /category/:cat prefix with the podcast listing.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireUser, cache gin.HandlerFunc) {
	router.POST("/add-category", requireUser, PostAdd(deps))
	router.GET("/categories", cache, GetAll(deps))
	router.GET("/category/:cat/feed", cache, GetFeed(deps))
}
