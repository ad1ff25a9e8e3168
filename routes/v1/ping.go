package v1

import (
	"net/http"

	"festival/storage"

	"github.com/gin-gonic/gin"
)

// @Summary Health check
// @Description Report service liveness and remote store connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ping [get]
func ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
		"online":  storage.Store.Online(),
	})
}

// RegisterPingRoutes registers the health check route
func RegisterPingRoutes(r *gin.RouterGroup) {
	r.GET("/ping", ping)
}
