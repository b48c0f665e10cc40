package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/auth"
	"github.com/killallgit/podcaster-api/api/types"
)

// Delete removes an owned podcast and its files
// @Summary      Delete a podcast
// @Tags         podcasts
// @Produce      json
// @Param        id   path      string  true  "Podcast ID"
// @Success      200  {object}  types.BaseResponse
// @Failure      401  {object}  types.ErrorResponse
// @Failure      403  {object}  types.ErrorResponse
// @Failure      404  {object}  types.ErrorResponse
// @Failure      500  {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /delete-podcast/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.PodcastService.Delete(c.Request.Context(), auth.CurrentUserID(c), c.Param("id")); err != nil {
			types.SendError(c, err, "Failed to delete podcast")
			return
		}
		types.SendMessage(c, http.StatusOK, "Podcast deleted successfully")
	}
}
