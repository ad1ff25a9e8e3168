package announcements

import (
	"festival/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to announcements
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public endpoints used by the student portal
	r.GET("/announcements", GetAllAnnouncements)
	r.POST("/announcements/:id/react", ReactToAnnouncement)

	announcements := r.Group("/announcements")
	announcements.Use(middleware.AuthMiddleware())
	{
		announcements.POST("/", CreateAnnouncement)
		announcements.PUT("/:id", UpdateAnnouncement)
		announcements.DELETE("/:id", DeleteAnnouncement)
	}
}
