package festival

import (
	"festival/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to festival metadata
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/festival", GetFestival)

	festival := r.Group("/festival")
	festival.Use(middleware.AuthMiddleware())
	{
		festival.PUT("/", UpdateFestival)
		festival.GET("/stats", GetDashboardStats)
	}
}
