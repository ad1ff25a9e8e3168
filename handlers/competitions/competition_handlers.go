package competitions

import (
	"errors"
	"net/http"

	"festival/models"
	"festival/storage"
	"festival/utils/response"

	"github.com/gin-gonic/gin"
)

// [GET] GetAllCompetitions
// @Summary Get all competitions
// @Description Get every competition with its embedded participants
// @Tags Competitions
// @Produce json
// @Success 200 {array} models.Competition
// @Failure 500 {object} map[string]string
// @Router /competitions [get]
func GetAllCompetitions(c *gin.Context) {
	competitions, err := storage.Store.GetCompetitions(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionsLoadFailed)
		return
	}
	c.JSON(http.StatusOK, competitions)
}

// [GET] GetCompetition
// @Summary Get one competition
// @Description Get a competition by document id
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} models.Competition
// @Failure 404 {object} map[string]string
// @Router /competitions/{id} [get]
func GetCompetition(c *gin.Context) {
	competition, err := storage.Store.GetCompetitionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionsLoadFailed)
		return
	}
	if competition == nil {
		response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}
	c.JSON(http.StatusOK, competition)
}

// [POST] CreateCompetition
// @Summary Create a competition
// @Description Create a new competition in the upcoming state
// @Tags Competitions
// @Accept json
// @Produce json
// @Param request body CreateCompetitionRequest true "Competition"
// @Success 201 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /competitions [post]
// @Security Bearer
func CreateCompetition(c *gin.Context) {
	// Step 1: Parse and validate the request body
	var req CreateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if !models.ValidCategory(req.Category) {
		response.Error(c, http.StatusBadRequest, ErrInvalidCategory)
		return
	}

	// Step 2: Persist the record
	competition, err := storage.Store.AddCompetition(c.Request.Context(), models.Competition{
		Name:     req.Name,
		Category: req.Category,
		Venue:    req.Venue,
		Date:     req.Date,
		Time:     req.Time,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, competition)
}

// [PUT] UpdateCompetition
// @Summary Update a competition
// @Description Apply a partial update to a competition record
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param request body UpdateCompetitionRequest true "Fields to update"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /competitions/{id} [put]
// @Security Bearer
func UpdateCompetition(c *gin.Context) {
	var req UpdateCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	// Status changes go through the dedicated endpoint so the monotonic
	// transition rule cannot be bypassed
	delete(req, "status")

	competition, err := storage.Store.UpdateCompetition(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrCompetitionUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, competition)
}

// [PUT] UpdateCompetitionStatus
// @Summary Change competition status
// @Description Move a competition along upcoming -> ongoing -> completed; backwards transitions are rejected
// @Tags Competitions
// @Accept json
// @Produce json
// @Param id path string true "Competition ID"
// @Param request body StatusRequest true "New status"
// @Success 200 {object} models.Competition
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /competitions/{id}/status [put]
// @Security Bearer
func UpdateCompetitionStatus(c *gin.Context) {
	// Step 1: Parse and validate the requested status
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if !models.ValidStatus(req.Status) {
		response.Error(c, http.StatusBadRequest, ErrInvalidStatus)
		return
	}

	ctx := c.Request.Context()

	// Step 2: Check the transition against the current status
	competition, err := storage.Store.GetCompetitionByID(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionsLoadFailed)
		return
	}
	if competition == nil {
		response.Error(c, http.StatusNotFound, ErrCompetitionNotFound)
		return
	}
	if !models.CanTransition(competition.Status, req.Status) {
		response.Error(c, http.StatusConflict, ErrInvalidTransition)
		return
	}

	// Step 3: Apply the new status
	updated, err := storage.Store.UpdateCompetition(ctx, competition.ID, map[string]any{"status": req.Status})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// [DELETE] DeleteCompetition
// @Summary Delete a competition
// @Description Remove a competition record
// @Tags Competitions
// @Produce json
// @Param id path string true "Competition ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /competitions/{id} [delete]
// @Security Bearer
func DeleteCompetition(c *gin.Context) {
	if err := storage.Store.DeleteCompetition(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrCompetitionDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Competition deleted"})
}
