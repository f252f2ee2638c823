// internal/handlers/page.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawanbishnoiii/shineveda-backend/internal/i18n"
	"github.com/pawanbishnoiii/shineveda-backend/internal/services"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

type PageHandler struct {
	pageService *services.PageService
}

func NewPageHandler(pageService *services.PageService) *PageHandler {
	return &PageHandler{pageService: pageService}
}

// GetPage handles GET /v1/pages/:slug (storefront content pages)
func (h *PageHandler) GetPage(c *gin.Context) {
	page, err := h.pageService.GetActivePageBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err, "page")
		return
	}

	utils.SuccessResponse(c, page)
}

// ListActive handles GET /v1/pages (storefront navigation)
func (h *PageHandler) ListActive(c *gin.Context) {
	pages, err := h.pageService.ListActivePages()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, pages)
}

// CreatePage handles POST /v1/admin/pages
func (h *PageHandler) CreatePage(c *gin.Context) {
	var req services.SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	page, err := h.pageService.CreatePage(&req)
	if err != nil {
		respondServiceError(c, err, "page")
		return
	}

	utils.CreatedResponse(c, page)
}

// UpdatePage handles PUT /v1/admin/pages/:id
func (h *PageHandler) UpdatePage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid page ID", nil)
		return
	}

	var req services.SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	page, err := h.pageService.UpdatePage(id, &req)
	if err != nil {
		respondServiceError(c, err, "page")
		return
	}

	utils.SuccessResponse(c, page)
}

// DeletePage handles DELETE /v1/admin/pages/:id
func (h *PageHandler) DeletePage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid page ID", nil)
		return
	}

	if err := h.pageService.DeletePage(id); err != nil {
		respondServiceError(c, err, "page")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyPageDeleted)})
}

// ListPages handles GET /v1/admin/pages
func (h *PageHandler) ListPages(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	pages, total, err := h.pageService.ListPages(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(pages, total, params))
}
