package admin

import (
	"net/http"

	"festival/database"
	"festival/migration"
	"festival/storage"
	"festival/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrMigrationCheckFailed = "Failed to check migration status"
	ErrMigrationFailed      = "Migration failed"
	ErrSyncFailed           = "Failed to sync local data to remote"
)

// [GET] GetMigrationStatus
// @Summary Migration status
// @Description Report, per collection, whether the remote store already holds data
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /admin/migration [get]
// @Security Bearer
func GetMigrationStatus(c *gin.Context) {
	migrator := migration.NewMigrator(storage.Store.Remote(), storage.Store.Local())
	needsMigration, status, err := migrator.CheckStatus(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrMigrationCheckFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"needsMigration": needsMigration,
		"collections":    status,
	})
}

// [POST] RunMigration
// @Summary Run the full migration
// @Description Copy local cache collections into the remote store; force re-copies populated collections
// @Tags Admin
// @Produce json
// @Param force query bool false "Re-copy collections that already have remote data"
// @Success 200 {object} migration.Result
// @Failure 500 {object} map[string]string
// @Router /admin/migration [post]
// @Security Bearer
func RunMigration(c *gin.Context) {
	force := c.Query("force") == "true"

	migrator := migration.NewMigrator(storage.Store.Remote(), storage.Store.Local())
	result, err := migrator.RunFullMigration(c.Request.Context(), force)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrMigrationFailed)
		return
	}
	c.JSON(http.StatusOK, result)
}

// [POST] SyncToRemote
// @Summary Push local data to the remote store
// @Description Copy every local record that is missing or stale remotely. Remote-only records are left untouched.
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /admin/sync [post]
// @Security Bearer
func SyncToRemote(c *gin.Context) {
	if err := storage.Store.SyncAll(c.Request.Context()); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrSyncFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sync completed"})
}

// [GET] GetConnectivity
// @Summary Connectivity state
// @Description Report whether the remote store is currently reachable
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /admin/connectivity [get]
// @Security Bearer
func GetConnectivity(c *gin.Context) {
	remoteConfigured := database.DB != nil
	c.JSON(http.StatusOK, gin.H{
		"online":           storage.Store.Online(),
		"remoteConfigured": remoteConfigured,
	})
}
