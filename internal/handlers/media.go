// internal/handlers/media.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawanbishnoiii/shineveda-backend/internal/i18n"
	"github.com/pawanbishnoiii/shineveda-backend/internal/models"
	"github.com/pawanbishnoiii/shineveda-backend/internal/services"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

type MediaHandler struct {
	mediaService *services.MediaService
}

func NewMediaHandler(mediaService *services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

var allowedFolders = map[models.MediaFolder]bool{
	models.MediaFolderProducts:     true,
	models.MediaFolderCategories:   true,
	models.MediaFolderTestimonials: true,
	models.MediaFolderPages:        true,
}

// Upload handles POST /v1/admin/media
func (h *MediaHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "No file provided", nil)
		return
	}
	defer file.Close()

	folder := models.MediaFolder(c.DefaultPostForm("folder", string(models.MediaFolderProducts)))
	if !allowedFolders[folder] {
		utils.BadRequestResponse(c, "Invalid folder", nil)
		return
	}

	altText := c.PostForm("alt_text")

	var uploadedBy *uuid.UUID
	if userIDStr, ok := utils.GetUserIDFromContext(c); ok {
		if userID, err := uuid.Parse(userIDStr); err == nil {
			uploadedBy = &userID
		}
	}

	media, err := h.mediaService.Upload(file, header, folder, altText, uploadedBy)
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	utils.CreatedResponse(c, media)
}

// Delete handles DELETE /v1/admin/media/:id
func (h *MediaHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid media ID", nil)
		return
	}

	if err := h.mediaService.Delete(id); err != nil {
		respondServiceError(c, err, "media")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyMediaDeleted)})
}

// ListMedia handles GET /v1/admin/media
func (h *MediaHandler) ListMedia(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	folder := c.Query("folder")

	media, total, err := h.mediaService.ListMedia(params, folder)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(media, total, params))
}
