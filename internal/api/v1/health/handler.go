package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version is the reported API version.
const Version = "1.0.0"

// HealthResponse defines the structure of the health check response
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// HealthCheck godoc
// @Summary      Health check
// @Description  Report service health and version.
// @Tags         health
// @Accept       json
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Version: Version,
	})
}
