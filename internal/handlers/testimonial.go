// internal/handlers/testimonial.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawanbishnoiii/shineveda-backend/internal/i18n"
	"github.com/pawanbishnoiii/shineveda-backend/internal/services"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

type TestimonialHandler struct {
	testimonialService *services.TestimonialService
}

func NewTestimonialHandler(testimonialService *services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{testimonialService: testimonialService}
}

// ListActive handles GET /v1/testimonials (storefront carousel)
func (h *TestimonialHandler) ListActive(c *gin.Context) {
	testimonials, err := h.testimonialService.ListActiveTestimonials()
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, testimonials)
}

// CreateTestimonial handles POST /v1/admin/testimonials
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req services.SaveTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	testimonial, err := h.testimonialService.CreateTestimonial(&req)
	if err != nil {
		respondServiceError(c, err, "testimonial")
		return
	}

	utils.CreatedResponse(c, testimonial)
}

// UpdateTestimonial handles PUT /v1/admin/testimonials/:id
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid testimonial ID", nil)
		return
	}

	var req services.SaveTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	testimonial, err := h.testimonialService.UpdateTestimonial(id, &req)
	if err != nil {
		respondServiceError(c, err, "testimonial")
		return
	}

	utils.SuccessResponse(c, testimonial)
}

// DeleteTestimonial handles DELETE /v1/admin/testimonials/:id
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid testimonial ID", nil)
		return
	}

	if err := h.testimonialService.DeleteTestimonial(id); err != nil {
		respondServiceError(c, err, "testimonial")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyTestimonialDeleted)})
}

// ListTestimonials handles GET /v1/admin/testimonials
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	testimonials, total, err := h.testimonialService.ListTestimonials(params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(testimonials, total, params))
}
