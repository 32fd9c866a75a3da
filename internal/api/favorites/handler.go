package favorites

import (
	"net/http"

	"artgallery-api/internal/api/respond"
	"artgallery-api/internal/domain/favorites"
	"artgallery-api/internal/logging"

	"github.com/gin-gonic/gin"
)

type ToggleRequest struct {
	UserID string `json:"userId" binding:"required"`
}

type Handler struct {
	store favorites.Store
}

func NewHandler(store favorites.Store) *Handler {
	return &Handler{store: store}
}

// POST /api/favorites/:artworkId  body: {userId}
func (h *Handler) Toggle(c *gin.Context) {
	artworkID, ok := respond.ArtworkID(c, "artworkId")
	if !ok {
		return
	}

	var req ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "userId is required")
		return
	}

	favorited, err := h.store.Toggle(c.Request.Context(), artworkID, req.UserID)
	if err != nil {
		respond.Error(c, err, "Failed to toggle favorite", logging.Fields{"artwork_id": artworkID, "user_id": req.UserID})
		return
	}

	msg := "Removed from favorites"
	if favorited {
		msg = "Added to favorites"
	}
	respond.OK(c, gin.H{"isFavorited": favorited, "message": msg})
}

// GET /api/favorites/user/:userId
// Returns the artwork copies saved when each favorite was made, newest first.
func (h *Handler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")

	items, err := h.store.ListArtworks(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err, "Failed to load favorites", logging.Fields{"user_id": userID})
		return
	}
	respond.OK(c, gin.H{"data": items})
}

// GET /api/favorites/:artworkId/:userId
func (h *Handler) Status(c *gin.Context) {
	artworkID, ok := respond.ArtworkID(c, "artworkId")
	if !ok {
		return
	}
	userID := c.Param("userId")

	favorited, err := h.store.Exists(c.Request.Context(), artworkID, userID)
	if err != nil {
		respond.Error(c, err, "Failed to check favorite status", logging.Fields{"artwork_id": artworkID, "user_id": userID})
		return
	}
	respond.OK(c, gin.H{"isFavorited": favorited})
}
