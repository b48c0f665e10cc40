package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/auth"
	"github.com/killallgit/podcaster-api/api/types"
)

// GetUser lists the signed-in user's podcasts, newest first
// @Summary      List my podcasts
// @Tags         podcasts
// @Produce      json
// @Success      200  {object}  types.PodcastsResponse
// @Failure      401  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /get-user-podcasts [get]
func GetUser(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.PodcastService.ListByUser(c.Request.Context(), auth.CurrentUserID(c))
		if err != nil {
			types.SendError(c, err, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, types.PodcastsResponse{Data: list})
	}
}
