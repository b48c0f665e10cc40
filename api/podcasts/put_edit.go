package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/auth"
	"github.com/killallgit/podcaster-api/api/types"
	"github.com/killallgit/podcaster-api/internal/services/podcasts"
)

// PutEdit changes the title and/or description of an owned podcast
// @Summary      Edit a podcast
// @Tags         podcasts
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Podcast ID"
// @Param        body  body      podcasts.EditInput  true  "Fields to change"
// @Success      200   {object}  models.Podcast
// @Failure      400   {object}  types.ErrorResponse
// @Failure      401   {object}  types.ErrorResponse
// @Failure      403   {object}  types.ErrorResponse
// @Failure      404   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /edit-podcast/{id} [put]
func PutEdit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input podcasts.EditInput
		if c.Request.ContentLength != 0 && !types.BindOrError(c, &input) {
			return
		}

		podcast, err := deps.PodcastService.Edit(c.Request.Context(), auth.CurrentUserID(c), c.Param("id"), input)
		if err != nil {
			types.SendError(c, err, "Failed to edit podcast")
			return
		}
		c.JSON(http.StatusOK, podcast)
	}
}
