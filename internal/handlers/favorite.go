// internal/handlers/favorite.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawanbishnoiii/shineveda-backend/internal/i18n"
	"github.com/pawanbishnoiii/shineveda-backend/internal/services"
	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

// FavoriteHandler serves anonymous visitor favorites. The visitor identity
// is a client-minted UUID carried in the X-Visitor-ID header; there is no
// account behind it.
type FavoriteHandler struct {
	favoriteService *services.FavoriteService
}

func NewFavoriteHandler(favoriteService *services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func visitorID(c *gin.Context) (uuid.UUID, bool) {
	raw := c.GetHeader("X-Visitor-ID")
	if raw == "" {
		utils.BadRequestResponse(c, "X-Visitor-ID header is required", nil)
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		utils.BadRequestResponse(c, "X-Visitor-ID must be a UUID", nil)
		return uuid.Nil, false
	}

	return id, true
}

// AddFavorite handles POST /v1/favorites/:productID
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	favorite, err := h.favoriteService.AddFavorite(visitor, productID)
	if err != nil {
		respondServiceError(c, err, "product")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.CreatedResponse(c, gin.H{
		"favorite": favorite,
		"message":  i18n.T(lang, i18n.KeyFavoriteAdded),
	})
}

// RemoveFavorite handles DELETE /v1/favorites/:productID
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	if err := h.favoriteService.RemoveFavorite(visitor, productID); err != nil {
		respondServiceError(c, err, "favorite")
		return
	}

	lang := utils.GetLangFromContext(c)
	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyFavoriteRemoved)})
}

// ListFavorites handles GET /v1/favorites
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	visitor, ok := visitorID(c)
	if !ok {
		return
	}

	favorites, err := h.favoriteService.ListFavorites(visitor)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	utils.SuccessResponse(c, favorites)
}
