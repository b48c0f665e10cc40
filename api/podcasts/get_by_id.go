package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

// GetByID returns a single podcast
// @Summary      Get a podcast
// @Tags         podcasts
// @Produce      json
// @Param        id   path      string  true  "Podcast ID"
// @Success      200  {object}  types.PodcastResponse
// @Failure      404  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /get-podcast/{id} [get]
func GetByID(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		podcast, err := deps.PodcastService.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, err, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, types.PodcastResponse{Data: podcast})
	}
}
