package announcements

import (
	"errors"
	"net/http"

	"festival/models"
	"festival/storage"
	"festival/utils/response"

	"github.com/gin-gonic/gin"
)

// [GET] GetAllAnnouncements
// @Summary Get all announcements
// @Description Get every announcement, newest first as stored
// @Tags Announcements
// @Produce json
// @Success 200 {array} models.Announcement
// @Failure 500 {object} map[string]string
// @Router /announcements [get]
func GetAllAnnouncements(c *gin.Context) {
	announcements, err := storage.Store.GetAnnouncements(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrAnnouncementsLoadFailed)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

// [POST] CreateAnnouncement
// @Summary Publish an announcement
// @Description Create a new active announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param request body CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} models.Announcement
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /announcements [post]
// @Security Bearer
func CreateAnnouncement(c *gin.Context) {
	// Step 1: Parse and validate the request body
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if req.Type == "" {
		req.Type = models.AnnouncementInfo
	}
	if !models.ValidAnnouncementType(req.Type) {
		response.Error(c, http.StatusBadRequest, ErrInvalidType)
		return
	}

	// Step 2: Persist the record
	announcement, err := storage.Store.AddAnnouncement(c.Request.Context(), models.Announcement{
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
		Priority:  req.Priority,
		VoiceData: req.VoiceData,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrAnnouncementCreateFailed)
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

// [PUT] UpdateAnnouncement
// @Summary Update an announcement
// @Description Apply a partial update, e.g. toggling active
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body UpdateAnnouncementRequest true "Fields to update"
// @Success 200 {object} models.Announcement
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /announcements/{id} [put]
// @Security Bearer
func UpdateAnnouncement(c *gin.Context) {
	var req UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	announcement, err := storage.Store.UpdateAnnouncement(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, ErrAnnouncementNotFound)
			return
		}
		response.Error(c, http.StatusInternalServerError, ErrAnnouncementUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, announcement)
}

// [DELETE] DeleteAnnouncement
// @Summary Delete an announcement
// @Description Remove an announcement record
// @Tags Announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /announcements/{id} [delete]
// @Security Bearer
func DeleteAnnouncement(c *gin.Context) {
	if err := storage.Store.DeleteAnnouncement(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrAnnouncementDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted"})
}

// [POST] ReactToAnnouncement
// @Summary React to an announcement
// @Description Increment the counter for one emoji. Counters only ever go up.
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID"
// @Param request body ReactionRequest true "Emoji"
// @Success 200 {object} models.Announcement
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /announcements/{id}/react [post]
func ReactToAnnouncement(c *gin.Context) {
	var req ReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Emoji == "" {
		response.Error(c, http.StatusBadRequest, ErrInvalidEmoji)
		return
	}

	ctx := c.Request.Context()
	announcement, err := storage.Store.GetAnnouncementByID(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrAnnouncementsLoadFailed)
		return
	}
	if announcement == nil {
		response.Error(c, http.StatusNotFound, ErrAnnouncementNotFound)
		return
	}

	reactions := announcement.Reactions
	if reactions == nil {
		reactions = map[string]int{}
	}
	reactions[req.Emoji]++

	updated, err := storage.Store.UpdateAnnouncement(ctx, announcement.ID, map[string]any{"reactions": reactions})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrAnnouncementUpdateFailed)
		return
	}
	c.JSON(http.StatusOK, updated)
}
