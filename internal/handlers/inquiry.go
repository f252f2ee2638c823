// internal/handlers/inquiry.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawanbishnoiii/shineveda-backend/internal/i18n"
	"github.com/pawanbishnoiii/shineveda-backend/internal/services"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

type InquiryHandler struct {
	inquiryService *services.InquiryService
}

func NewInquiryHandler(inquiryService *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiryService: inquiryService}
}

// CreateInquiry handles POST /v1/inquiries (public contact form)
func (h *InquiryHandler) CreateInquiry(c *gin.Context) {
	var req services.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	inquiry, err := h.inquiryService.CreateInquiry(&req)
	if err != nil {
		respondServiceError(c, err, "inquiry")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.CreatedResponse(c, gin.H{
		"inquiry": inquiry,
		"message": i18n.T(lang, i18n.KeyInquiryReceived),
	})
}

// GetInquiry handles GET /v1/admin/inquiries/:id
func (h *InquiryHandler) GetInquiry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid inquiry ID", nil)
		return
	}

	inquiry, err := h.inquiryService.GetInquiry(id)
	if err != nil {
		respondServiceError(c, err, "inquiry")
		return
	}

	utils.SuccessResponse(c, inquiry)
}

// UpdateInquiry handles PUT /v1/admin/inquiries/:id
func (h *InquiryHandler) UpdateInquiry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid inquiry ID", nil)
		return
	}

	var req services.UpdateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	inquiry, err := h.inquiryService.UpdateInquiry(id, &req)
	if err != nil {
		respondServiceError(c, err, "inquiry")
		return
	}

	utils.SuccessResponse(c, inquiry)
}

// DeleteInquiry handles DELETE /v1/admin/inquiries/:id
func (h *InquiryHandler) DeleteInquiry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid inquiry ID", nil)
		return
	}

	if err := h.inquiryService.DeleteInquiry(id); err != nil {
		respondServiceError(c, err, "inquiry")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyInquiryDeleted)})
}

// ListInquiries handles GET /v1/admin/inquiries
func (h *InquiryHandler) ListInquiries(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	inquiries, total, err := h.inquiryService.ListInquiries(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(inquiries, total, params))
}
