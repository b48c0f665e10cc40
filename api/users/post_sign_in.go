package users

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

// SignInRequest is the sign-in body
type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// PostSignIn checks credentials and starts a cookie session
// @Summary      Sign in
// @Description  Returns a bearer token and sets it as an httpOnly session cookie
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      SignInRequest  true  "Credentials"
// @Success      200   {object}  types.SignInResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /sign-in [post]
func PostSignIn(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request SignInRequest
		if !types.BindOrError(c, &request) {
			return
		}

		session, err := deps.UserService.SignIn(c.Request.Context(), request.Email, request.Password)
		if err != nil {
			types.SendError(c, err, "Failed to sign in")
			return
		}

		setSessionCookie(c, deps, session.Token, deps.Tokens.TTL())
		c.JSON(http.StatusOK, types.SignInResponse{
			BaseResponse: types.BaseResponse{Status: types.StatusOK, Message: "Sign-in successful"},
			ID:           session.User.ID.String(),
			Username:     session.User.Username,
			Email:        session.User.Email,
			Token:        session.Token,
		})
	}
}
