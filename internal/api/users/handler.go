package users

import (
	"artgallery-api/internal/api/respond"
	"artgallery-api/internal/domain/works"
	"artgallery-api/internal/logging"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	artworks works.Store
}

func NewHandler(artworks works.Store) *Handler {
	return &Handler{artworks: artworks}
}

// GET /api/users/:userEmail/artworks/count
func (h *Handler) CountArtworks(c *gin.Context) {
	email := c.Param("userEmail")

	n, err := h.artworks.CountByUser(c.Request.Context(), email)
	if err != nil {
		respond.Error(c, err, "Failed to count artworks", logging.Fields{"user_email": email})
		return
	}
	respond.OK(c, gin.H{"count": n})
}
