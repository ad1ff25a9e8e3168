package admin

import (
	"festival/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to administration
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	{
		admin.GET("/migration", GetMigrationStatus)
		admin.POST("/migration", RunMigration)
		admin.POST("/sync", SyncToRemote)
		admin.GET("/connectivity", GetConnectivity)
	}
}
