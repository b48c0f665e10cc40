package users

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

// RegisterRoutes registers account routes. limit guards the credential
// endpoints.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, requireUser, limit gin.HandlerFunc) {
	router.POST("/sign-up", limit, PostSignUp(deps))
	router.POST("/sign-in", limit, PostSignIn(deps))
	router.POST("/logout", PostLogout(deps))
	router.GET("/check-cookie", GetCheckCookie(deps))
	router.GET("/user-details", requireUser, GetUserDetails(deps))
}
