package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

// GetByCategory lists the podcasts of every category with the given name
// @Summary      List podcasts in a category
// @Tags         podcasts
// @Produce      json
// @Param        cat  path      string  true  "Category name"
// @Success      200  {object}  types.PodcastsResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /category/{cat} [get]
func GetByCategory(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.PodcastService.ListByCategoryName(c.Request.Context(), c.Param("cat"))
		if err != nil {
			types.SendError(c, err, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, types.PodcastsResponse{Data: list})
	}
}
