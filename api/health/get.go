package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcaster-api/api/types"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports service and database health
// @Tags         system
// @Produce      json
// @Success      200  {object}  types.HealthResponse
// @Failure      503  {object}  types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := types.HealthResponse{
			Status:    statusHealthy,
			Version:   versionOf(deps),
			Timestamp: time.Now().UTC(),
			Database:  getDatabaseStatus(deps),
		}

		code := http.StatusOK
		if response.Database.Status == "error" {
			response.Status = statusUnhealthy
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) types.DatabaseStatus {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return types.DatabaseStatus{Status: "not configured"}
	}

	status := types.DatabaseStatus{Driver: deps.DB.Dialector.Name()}
	if err := deps.DB.HealthCheck(); err != nil {
		status.Status = "error"
		status.Error = err.Error()
		return status
	}

	status.Status = "connected"
	status.Connected = true
	return status
}

func versionOf(deps *types.Dependencies) string {
	if deps == nil || deps.Version == "" {
		return "dev"
	}
	return deps.Version
}
