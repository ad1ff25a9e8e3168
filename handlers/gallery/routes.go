package gallery

import (
	"festival/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the gallery
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/gallery", GetGallery)

	gallery := r.Group("/gallery")
	gallery.Use(middleware.AuthMiddleware())
	{
		gallery.POST("/", AddImage)
		gallery.DELETE("/:id", DeleteImage)
	}
}
