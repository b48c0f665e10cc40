package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

// GetAll lists every category by name
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  types.CategoriesResponse
// @Failure      500  {object}  types.ErrorResponse
// @Router       /categories [get]
func GetAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.CategoryService.List(c.Request.Context())
		if err != nil {
			types.SendError(c, err, "Internal server error")
			return
		}
		c.JSON(http.StatusOK, types.CategoriesResponse{Data: list})
	}
}
