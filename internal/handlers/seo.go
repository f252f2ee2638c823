// internal/handlers/seo.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawanbishnoiii/shineveda-backend/internal/i18n"
	"github.com/pawanbishnoiii/shineveda-backend/internal/services"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

type SeoHandler struct {
	seoService *services.SeoService
}

func NewSeoHandler(seoService *services.SeoService) *SeoHandler {
	return &SeoHandler{seoService: seoService}
}

// GetSettings handles GET /v1/admin/seo
func (h *SeoHandler) GetSettings(c *gin.Context) {
	settings, err := h.seoService.GetSettings()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, settings)
}

// UpdateSettings handles PUT /v1/admin/seo
func (h *SeoHandler) UpdateSettings(c *gin.Context) {
	var req services.UpdateSeoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}
	if len(req.Settings) == 0 {
		utils.BadRequestResponse(c, "No settings provided", nil)
		return
	}

	var adminID uuid.UUID
	if userIDStr, ok := utils.GetUserIDFromContext(c); ok {
		adminID, _ = uuid.Parse(userIDStr)
	}

	for key, value := range req.Settings {
		if _, err := h.seoService.UpdateSetting(key, value, adminID); err != nil {
			utils.InternalErrorResponse(c, "")
			return
		}
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeySeoUpdated)})
}

// Sitemap handles GET /sitemap.xml
func (h *SeoHandler) Sitemap(c *gin.Context) {
	xml, err := h.seoService.Sitemap(c.Request.Context())
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(xml))
}
