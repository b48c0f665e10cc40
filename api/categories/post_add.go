package categories

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

// AddRequest is the add-category body
type AddRequest struct {
	CategoryName string `json:"categoryName" form:"categoryName"`
}

// PostAdd creates a category
// @Summary      Add a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      AddRequest  true  "Category"
// @Success      201   {object}  types.CategoryCreatedResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      401   {object}  types.ErrorResponse
// @Security     BearerAuth
// @Router       /add-category [post]
func PostAdd(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request AddRequest
		if !types.BindOrError(c, &request) {
			return
		}

		category, err := deps.CategoryService.Create(c.Request.Context(), request.CategoryName)
		if err != nil {
			types.SendError(c, err, "Failed to add category")
			return
		}

		c.JSON(http.StatusCreated, types.CategoryCreatedResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Category added successfully"},
			Data:         category,
		})
	}
}
