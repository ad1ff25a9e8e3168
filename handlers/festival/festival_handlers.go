package festival

import (
	"net/http"

	"festival/models"
	"festival/services"
	"festival/storage"
	"festival/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrInvalidRequest     = "Invalid request body"
	ErrFestivalLoadFailed = "Failed to load festival data"
	ErrFestivalSaveFailed = "Failed to save festival data"
	ErrStatsFailed        = "Failed to compute dashboard stats"
)

// [GET] GetFestival
// @Summary Get festival metadata
// @Description Get the festival singleton, falling back to defaults when nothing is stored
// @Tags Festival
// @Produce json
// @Success 200 {object} models.Festival
// @Failure 500 {object} map[string]string
// @Router /festival [get]
func GetFestival(c *gin.Context) {
	festival, err := storage.Store.GetFestival(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFestivalLoadFailed)
		return
	}
	c.JSON(http.StatusOK, festival)
}

// [PUT] UpdateFestival
// @Summary Update festival metadata
// @Description Replace the festival singleton
// @Tags Festival
// @Accept json
// @Produce json
// @Param request body models.Festival true "Festival metadata"
// @Success 200 {object} models.Festival
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /festival [put]
// @Security Bearer
func UpdateFestival(c *gin.Context) {
	var festival models.Festival
	if err := c.ShouldBindJSON(&festival); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if err := storage.Store.SetFestival(c.Request.Context(), festival); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFestivalSaveFailed)
		return
	}
	c.JSON(http.StatusOK, festival)
}

// [GET] GetDashboardStats
// @Summary Dashboard statistics
// @Description Aggregate counters for the admin dashboard, including days until the festival starts
// @Tags Festival
// @Produce json
// @Success 200 {object} services.DashboardStats
// @Failure 500 {object} map[string]string
// @Router /festival/stats [get]
// @Security Bearer
func GetDashboardStats(c *gin.Context) {
	stats, err := services.GetDashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrStatsFailed)
		return
	}
	c.JSON(http.StatusOK, stats)
}
