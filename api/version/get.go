package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

const (
	name        = "Podcaster API"
	description = "API for publishing and browsing podcasts"
)

// Get handles version requests
// @Summary      API information
// @Tags         system
// @Produce      json
// @Success      200  {object}  types.VersionResponse
// @Router       / [get]
func Get(version string) gin.HandlerFunc {
	if version == "" {
		version = "dev"
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, types.VersionResponse{
			Name:        name,
			Version:     version,
			Description: description,
			Status:      "running",
		})
	}
}
