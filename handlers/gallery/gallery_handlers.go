package gallery

import (
	"net/http"

	"festival/middleware"
	"festival/models"
	"festival/storage"
	"festival/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for error messages
const (
	ErrInvalidRequest      = "Invalid request body"
	ErrGalleryLoadFailed   = "Failed to load gallery"
	ErrImageCreateFailed   = "Failed to save image"
	ErrImageDeleteFailed   = "Failed to delete image"
	ErrMissingImagePayload = "Image payload is required"
)

// CreateImageRequest model for uploading a gallery image. Src carries the
// canonical payload; base64Image is accepted for older clients.
type CreateImageRequest struct {
	Title       string `json:"title" binding:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Src         string `json:"src"`
	Base64Image string `json:"base64Image"`
	FileName    string `json:"fileName"`
	FileSize    int64  `json:"fileSize"`
}

// [GET] GetGallery
// @Summary Get the gallery
// @Description Get every gallery image record
// @Tags Gallery
// @Produce json
// @Success 200 {array} models.GalleryImage
// @Failure 500 {object} map[string]string
// @Router /gallery [get]
func GetGallery(c *gin.Context) {
	images, err := storage.Store.GetGallery(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrGalleryLoadFailed)
		return
	}
	c.JSON(http.StatusOK, images)
}

// [POST] AddImage
// @Summary Add a gallery image
// @Description Store an image record; legacy base64 payloads are folded into src
// @Tags Gallery
// @Accept json
// @Produce json
// @Param request body CreateImageRequest true "Image"
// @Success 201 {object} models.GalleryImage
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /gallery [post]
// @Security Bearer
func AddImage(c *gin.Context) {
	// Step 1: Parse and validate the request body
	var req CreateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}
	if req.Src == "" && req.Base64Image == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingImagePayload)
		return
	}

	// Step 2: Record who uploaded, when available
	uploadedBy := ""
	if admin, err := middleware.GetAdminFromRequest(c); err == nil {
		uploadedBy = admin.Username
	}

	// Step 3: Persist the normalized record
	image := models.GalleryImage{
		Title:       req.Title,
		Category:    req.Category,
		Description: req.Description,
		Src:         req.Src,
		Base64Image: req.Base64Image,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		UploadedBy:  uploadedBy,
	}
	image.Normalize()

	saved, err := storage.Store.AddGalleryImage(c.Request.Context(), image)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrImageCreateFailed)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// [DELETE] DeleteImage
// @Summary Delete a gallery image
// @Description Remove an image record
// @Tags Gallery
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /gallery/{id} [delete]
// @Security Bearer
func DeleteImage(c *gin.Context) {
	if err := storage.Store.DeleteGalleryImage(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, http.StatusInternalServerError, ErrImageDeleteFailed)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
