package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

// PostLogout clears the session cookie
// @Summary      Log out
// @Tags         users
// @Produce      json
// @Success      200  {object}  types.BaseResponse
// @Router       /logout [post]
func PostLogout(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		setSessionCookie(c, deps, "", -1)
		types.SendMessage(c, http.StatusOK, "Logged out")
	}
}
