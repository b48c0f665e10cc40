package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
	"github.com/killallgit/podcaster-api/internal/services/users"
)

// PostSignUp registers an account
// @Summary      Sign up
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      users.SignUpInput  true  "Account"
// @Success      201   {object}  types.BaseResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /sign-up [post]
func PostSignUp(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input users.SignUpInput
		if !types.BindOrError(c, &input) {
			return
		}

		if _, err := deps.UserService.SignUp(c.Request.Context(), input); err != nil {
			types.SendError(c, err, "Failed to sign up")
			return
		}
		types.SendMessage(c, http.StatusCreated, "Sign-up successful")
	}
}
