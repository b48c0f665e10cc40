package podcasts

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

// Middleware groups the per-route middleware podcast routes need
type Middleware struct {
	RequireUser gin.HandlerFunc
	Upload      gin.HandlerFunc
	Cache       gin.HandlerFunc
	UploadLimit gin.HandlerFunc
}

// RegisterRoutes registers podcast routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, mw Middleware) {
	router.POST("/add-podcast", handlers(mw.UploadLimit, mw.RequireUser, mw.Upload, PostAdd(deps))...)
	router.GET("/get-podcasts", handlers(mw.Cache, GetAll(deps))...)
	router.GET("/get-user-podcasts", handlers(mw.RequireUser, GetUser(deps))...)
	router.GET("/get-podcast/:id", handlers(mw.Cache, GetByID(deps))...)
	router.GET("/category/:cat", handlers(mw.Cache, GetByCategory(deps))...)
	router.PUT("/edit-podcast/:id", handlers(mw.RequireUser, PutEdit(deps))...)
	router.DELETE("/delete-podcast/:id", handlers(mw.RequireUser, Delete(deps))...)
}

// handlers drops unset middleware
func handlers(chain ...gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(chain))
	for _, h := range chain {
		if h != nil {
			out = append(out, h)
		}
	}
	return out
}
