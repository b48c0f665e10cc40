package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/auth"
	"github.com/killallgit/podcaster-api/api/types"
)

// GetUserDetails returns the signed-in user
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  types.UserDetailsResponse
// @Failure      401  {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /user-details [get]
func GetUserDetails(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			types.SendUnauthorized(c, "Unauthorized")
			return
		}
		c.JSON(http.StatusOK, types.UserDetailsResponse{User: user})
	}
}
