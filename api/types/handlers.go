package types

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/killallgit/podcaster-api/pkg/errors"
)

// Handler utility functions to reduce duplication across handlers

// BindOrError binds a JSON or form body into target.
// Returns false and sends an error response if binding fails.
func BindOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBind(target); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Status:  StatusError,
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return false
	}
	return true
}

// SendError renders err. AppErrors below 500 keep their own message; any
// other failure is logged and reported with fallback.
func SendError(c *gin.Context, err error, fallback string) {
	status := apperrors.GetHTTPCode(err)
	response := ErrorResponse{
		Status:  StatusError,
		Message: fallback,
		Code:    string(apperrors.GetCode(err)),
	}

	if appErr, ok := apperrors.As(err); ok && status < http.StatusInternalServerError {
		response.Message = appErr.Message
		if fields, ok := appErr.Details["fields"]; ok {
			response.Details = gin.H{"fields": fields}
		}
	} else {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.Error = err.Error()
	}

	c.JSON(status, response)
}

// SendBadRequest sends a standardized bad request response
func SendBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Status: StatusError, Message: message})
}

// SendUnauthorized sends a standardized unauthorized response
func SendUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{Status: StatusError, Message: message})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Status: StatusError, Message: message})
}

// SendMessage sends {status, message} with the given code
func SendMessage(c *gin.Context, status int, message string) {
	c.JSON(status, BaseResponse{Status: StatusOK, Message: message})
}
