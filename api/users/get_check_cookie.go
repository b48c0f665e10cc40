package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

// GetCheckCookie reports whether the session cookie is present. The token
// itself is not validated.
// @Summary      Check session cookie
// @Tags         users
// @Produce      json
// @Success      200  {object}  types.CheckCookieResponse
// @Router       /check-cookie [get]
func GetCheckCookie(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(cookieName(deps))
		c.JSON(http.StatusOK, types.CheckCookieResponse{Message: err == nil && value != ""})
	}
}
