package students

import (
	"festival/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to students
// r: the RouterGroup to which routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public read-only endpoints used by the student portal
	r.GET("/students/code/:code", GetStudentByCode)
	r.GET("/students/leaderboard", GetLeaderboard)
	r.GET("/students/leaderboard/teams", GetTeamLeaderboard)

	students := r.Group("/students")
	students.Use(middleware.AuthMiddleware())
	{
		students.GET("/", GetAllStudents)
		students.GET("/export", ExportStudentsXLSX)
		students.GET("/:id", GetStudent)
		students.POST("/", CreateStudent)
		students.PUT("/:id", UpdateStudent)
		students.DELETE("/:id", DeleteStudent)
		students.POST("/reset", ResetStudentData)
		students.POST("/recompute", RecomputeStudents)
	}
}
