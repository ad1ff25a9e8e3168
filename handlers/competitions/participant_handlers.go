package competitions

import (
	"net/http"

	"festival/models"
	"festival/storage"
	"festival/utils"
	"festival/utils/response"

	"github.com/gin-gonic/gin"
)

// [POST] AddParticipant
// @Summary Register a student for a competition
// @Description Add a student, looked up by id or registration code, to the competition's participant list
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param request body AddParticipantRequest true "Student reference"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /competitions/{id}/participants [post]
// @Security Bearer
func AddParticipant(c *gin.Context) {
	// Step 1: Parse the request body
	var req AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.StudentID == "" && req.Code == "") {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	ctx := c.Request.Context()

	// Step 2: Resolve the student
	var student *models.Student
	var err error
	if req.StudentID != "" {
		student, err = storage.Store.GetStudentByID(ctx, req.StudentID)
	} else {
		student, err = storage.Store.GetStudentByCode(ctx, req.Code)
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionsLoadFailed)
		return
	}
	if student == nil {
		response.Error(c, http.StatusNotFound, ErrStudentNotFound)
		return
	}

	// Step 3: Load the competition and reject double registration
	competition, err := storage.Store.GetCompetitionByID(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionsLoadFailed)
		return
	}
	if competition == nil {
		response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}
	if competition.FindParticipant(student.ID, student.Code) != nil {
		response.Error(c, http.StatusConflict, ErrAlreadyRegistered)
		return
	}

	// Step 4: Append the participant and save
	participants := append(competition.Participants, models.Participant{
		StudentID: student.ID,
		Name:      student.Name,
		Code:      student.Code,
	})
	updated, err := storage.Store.UpdateCompetition(ctx, competition.ID, map[string]any{"participants": participants})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// [DELETE] RemoveParticipant
// @Summary Remove a participant
// @Description Remove a student from the competition's participant list
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Param student_id path string true "Student ID"
// @Success 200 {object} models.Competition
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/participants/{student_id} [delete]
// @Security Bearer
func RemoveParticipant(c *gin.Context) {
	ctx := c.Request.Context()

	competition, err := storage.Store.GetCompetitionByID(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionsLoadFailed)
		return
	}
	if competition == nil {
		response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	studentID := c.Param("student_id")
	participants := make([]models.Participant, 0, len(competition.Participants))
	removed := false
	for _, p := range competition.Participants {
		if p.StudentID == studentID {
			removed = true
			continue
		}
		participants = append(participants, p)
	}
	if !removed {
		response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
		return
	}

	updated, err := storage.Store.UpdateCompetition(ctx, competition.ID, map[string]any{"participants": participants})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// [PUT] MarkParticipantReported
// @Summary Mark a participant as reported
// @Description Record that the student attended the competition
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Param student_id path string true "Student ID"
// @Success 200 {object} models.Competition
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/participants/{student_id}/report [put]
// @Security Bearer
func MarkParticipantReported(c *gin.Context) {
	patchParticipant(c, func(p *models.Participant) bool {
		p.Reported = true
		return true
	})
}

// [PUT] SetParticipantPrize
// @Summary Assign a prize
// @Description Set the participant's prize to "1", "2" or "3"
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param student_id path string true "Student ID"
// @Param request body PrizeRequest true "Prize"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/participants/{student_id}/prize [put]
// @Security Bearer
func SetParticipantPrize(c *gin.Context) {
	var req PrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	switch req.Prize {
	case "1", "2", "3", "":
	default:
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	patchParticipant(c, func(p *models.Participant) bool {
		p.Prize = req.Prize
		return true
	})
}

// [PUT] SetParticipantCustomPoints
// @Summary Assign bonus points
// @Description Set the participant's custom bonus points, added on top of prize or attendance points
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param student_id path string true "Student ID"
// @Param request body CustomPointsRequest true "Bonus points"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/participants/{student_id}/points [put]
// @Security Bearer
func SetParticipantCustomPoints(c *gin.Context) {
	var req CustomPointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	patchParticipant(c, func(p *models.Participant) bool {
		p.CustomPoints = req.CustomPoints
		return true
	})
}

// [POST] ShuffleCompetitionCodes
// @Summary Shuffle judging codes
// @Description Assign every participant a distinct shuffled letter code for anonymous judging
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 404 {object} map[string]string
// @Router /competitions/{id}/shuffle-codes [post]
// @Security Bearer
func ShuffleCompetitionCodes(c *gin.Context) {
	ctx := c.Request.Context()

	competition, err := storage.Store.GetCompetitionByID(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionsLoadFailed)
		return
	}
	if competition == nil {
		response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	participants := utils.AssignCompetitionCodes(competition.Participants)
	updated, err := storage.Store.UpdateCompetition(ctx, competition.ID, map[string]any{"participants": participants})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// patchParticipant loads the competition from the path, applies apply to
// the participant named by the student_id path param and saves the full
// participant list back
func patchParticipant(c *gin.Context, apply func(*models.Participant) bool) {
	ctx := c.Request.Context()

	competition, err := storage.Store.GetCompetitionByID(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionsLoadFailed)
		return
	}
	if competition == nil {
		response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}

	participant := competition.FindParticipant(c.Param("student_id"), "")
	if participant == nil {
		response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
		return
	}
	if !apply(participant) {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	updated, err := storage.Store.UpdateCompetition(ctx, competition.ID, map[string]any{"participants": competition.Participants})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, updated)
}
