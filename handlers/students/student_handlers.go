package students

import (
	"errors"
	"net/http"

	"festival/models"
	"festival/services"
	"festival/storage"
	"festival/utils"
	"festival/utils/response"

	"github.com/gin-gonic/gin"
)

// [GET] GetAllStudents
// @Summary Get all students
// @Description Get every registered student with derived points and results
// @Tags Students
// @Produce json
// @Success 200 {array} models.Student
// @Failure 500 {object} map[string]string
// @Router /students [get]
// @Security Bearer
func GetAllStudents(c *gin.Context) {
	students, err := storage.Store.GetStudents(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrStudentsLoadFailed)
		return
	}
	c.JSON(http.StatusOK, students)
}

// [GET] GetStudent
// @Summary Get one student
// @Description Get a student by document id
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} map[string]string
// @Router /students/{id} [get]
// @Security Bearer
func GetStudent(c *gin.Context) {
	student, err := storage.Store.GetStudentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrStudentsLoadFailed)
		return
	}
	if student == nil {
		response.Error(c, http.StatusNotFound, ErrStudentNotFound)
		return
	}
	c.JSON(http.StatusOK, student)
}

// [GET] GetStudentByCode
// @Summary Get a student by registration code
// @Description Look up a student by their registration code, e.g. RV2025042
// @Tags Students
// @Produce json
// @Param code path string true "Registration code"
// @Success 200 {object} models.Student
// @Failure 404 {object} map[string]string
// @Router /students/code/{code} [get]
func GetStudentByCode(c *gin.Context) {
	student, err := storage.Store.GetStudentByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrStudentsLoadFailed)
		return
	}
	if student == nil {
		response.Error(c, http.StatusNotFound, ErrStudentNotFound)
		return
	}
	c.JSON(http.StatusOK, student)
}

// [POST] CreateStudent
// @Summary Register a student
// @Description Register a new student, generating the next registration code when none is given
// @Tags Students
// @Accept json
// @Produce json
// @Param request body CreateStudentRequest true "Student"
// @Success 201 {object} models.Student
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /students [post]
// @Security Bearer
func CreateStudent(c *gin.Context) {
	// Step 1: Parse the request body
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	ctx := c.Request.Context()

	// Step 2: Generate the next sequential code when none was given
	code := req.Code
	if code == "" {
		existing, err := storage.Store.GetStudents(ctx)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, ErrStudentsLoadFailed)
			return
		}
		code = utils.NextStudentCode(existing)
	}

	// Step 3: Persist the record
	student, err := storage.Store.AddStudent(ctx, models.Student{
		Name: req.Name,
		Team: req.Team,
		Year: req.Year,
		Code: code,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrStudentCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, student)
}

// [PUT] UpdateStudent
// @Summary Update a student
// @Description Apply a partial update to a student record
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param request body UpdateStudentRequest true "Fields to update"
// @Success 200 {object} models.Student
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /students/{id} [put]
// @Security Bearer
func UpdateStudent(c *gin.Context) {
	var req UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	student, err := storage.Store.UpdateStudent(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, ErrStudentNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrStudentUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, student)
}

// [DELETE] DeleteStudent
// @Summary Delete a student
// @Description Remove a student record
// @Tags Students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /students/{id} [delete]
// @Security Bearer
func DeleteStudent(c *gin.Context) {
	if err := storage.Store.DeleteStudent(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrStudentDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Student deleted"})
}

// [GET] GetLeaderboard
// @Summary Student leaderboard
// @Description Rank every student by total points
// @Tags Students
// @Produce json
// @Success 200 {array} services.LeaderboardEntry
// @Failure 500 {object} map[string]string
// @Router /students/leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	entries, err := services.GetLeaderboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrStudentsLoadFailed)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// [GET] GetTeamLeaderboard
// @Summary Team leaderboard
// @Description Aggregate student points per team
// @Tags Students
// @Produce json
// @Success 200 {array} services.TeamStanding
// @Failure 500 {object} map[string]string
// @Router /students/leaderboard/teams [get]
func GetTeamLeaderboard(c *gin.Context) {
	standings, err := services.GetTeamLeaderboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrStudentsLoadFailed)
		return
	}
	c.JSON(http.StatusOK, standings)
}

// [POST] ResetStudentData
// @Summary Reset all student data
// @Description Clear derived fields on every student and drop all competition participants
// @Tags Students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /students/reset [post]
// @Security Bearer
func ResetStudentData(c *gin.Context) {
	resetStudents, resetCompetitions, err := services.ResetStudentData(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrResetFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"students":     resetStudents,
		"competitions": resetCompetitions,
	})
}

// [POST] RecomputeStudents
// @Summary Recompute derived student fields
// @Description Rebuild points, events and results for every student from competition data
// @Tags Students
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /students/recompute [post]
// @Security Bearer
func RecomputeStudents(c *gin.Context) {
	count, err := services.RecomputeStudentRecords(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"recomputed": count})
}
