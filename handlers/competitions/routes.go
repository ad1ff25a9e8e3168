package competitions

import (
	"festival/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to competitions
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public read-only endpoints used by the student portal
	r.GET("/competitions", GetAllCompetitions)
	r.GET("/competitions/:id", GetCompetition)

	competitions := r.Group("/competitions")
	competitions.Use(middleware.AuthMiddleware())
	{
		competitions.POST("/", CreateCompetition)
		competitions.PUT("/:id", UpdateCompetition)
		competitions.PUT("/:id/status", UpdateCompetitionStatus)
		competitions.DELETE("/:id", DeleteCompetition)
		competitions.POST("/:id/participants", AddParticipant)
		competitions.DELETE("/:id/participants/:student_id", RemoveParticipant)
		competitions.PUT("/:id/participants/:student_id/report", MarkParticipantReported)
		competitions.PUT("/:id/participants/:student_id/prize", SetParticipantPrize)
		competitions.PUT("/:id/participants/:student_id/points", SetParticipantCustomPoints)
		competitions.POST("/:id/shuffle-codes", ShuffleCompetitionCodes)
	}
}
