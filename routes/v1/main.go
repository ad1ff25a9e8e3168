package v1

import (
	"festival/handlers/admin"
	"festival/handlers/announcements"
	"festival/handlers/auth"
	"festival/handlers/competitions"
	"festival/handlers/festival"
	"festival/handlers/gallery"
	"festival/handlers/students"
	"festival/handlers/ws"
	"festival/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500) // 100 requests per second, 150 burst
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	auth.RegisterRoutes(v1)
	students.RegisterRoutes(v1)
	competitions.RegisterRoutes(v1)
	announcements.RegisterRoutes(v1)
	gallery.RegisterRoutes(v1)
	festival.RegisterRoutes(v1)
	admin.RegisterRoutes(v1)
	ws.RegisterRoutes(v1)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
