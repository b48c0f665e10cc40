package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

// GetAll lists every podcast, newest first
// @Summary      List podcasts
// @Tags         podcasts
// @Produce      json
// @Success      200  {object}  types.PodcastsResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /get-podcasts [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.PodcastService.ListAll(c.Request.Context())
		if err != nil {
			types.SendError(c, err, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, types.PodcastsResponse{Data: list})
	}
}
