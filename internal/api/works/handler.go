package works

import (
	"net/http"
	"time"

	"artgallery-api/internal/api/respond"
	"artgallery-api/internal/domain/works"
	"artgallery-api/internal/logging"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store works.Store
	now   func() time.Time
}

func NewHandler(store works.Store) *Handler {
	return &Handler{store: store, now: time.Now}
}

// ------------------------------
// GET /arts  (legacy: bare array, no envelope)
// ------------------------------
func (h *Handler) ListAllLegacy(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), works.Query{})
	if err != nil {
		respond.Error(c, err, "Failed to load artworks", nil)
		return
	}
	c.JSON(http.StatusOK, items)
}

// ------------------------------
// GET /api/artworks?visibility=
// ------------------------------
func (h *Handler) List(c *gin.Context) {
	visibility := c.Query("visibility")
	if visibility == "" {
		visibility = works.VisibilityPublic
	}

	items, err := h.store.List(c.Request.Context(), works.Query{Visibility: visibility})
	if err != nil {
		respond.Error(c, err, "Failed to load artworks", logging.Fields{"visibility": visibility})
		return
	}
	respond.OK(c, gin.H{"data": items})
}

// ------------------------------
// GET /api/artworks/featured
// ------------------------------
func (h *Handler) Featured(c *gin.Context) {
	items, err := h.store.List(c.Request.Context(), works.Query{
		NewestFirst: true,
		Limit:       works.FeaturedLimit,
	})
	if err != nil {
		respond.Error(c, err, "Failed to load featured artworks", nil)
		return
	}
	respond.OK(c, gin.H{"data": items})
}

// ------------------------------
// GET /api/artworks/user/:userId
// ------------------------------
func (h *Handler) ListByUser(c *gin.Context) {
	userEmail := c.Param("userId")

	items, err := h.store.List(c.Request.Context(), works.Query{
		UserEmail:   userEmail,
		NewestFirst: true,
	})
	if err != nil {
		respond.Error(c, err, "Failed to load user artworks", logging.Fields{"user_email": userEmail})
		return
	}
	respond.OK(c, gin.H{"data": items})
}

// ------------------------------
// GET /api/artworks/:id
// ------------------------------
func (h *Handler) Get(c *gin.Context) {
	id, ok := respond.ArtworkID(c, "id")
	if !ok {
		return
	}

	a, err := h.store.Get(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err, "Failed to load artwork", logging.Fields{"artwork_id": id})
		return
	}
	respond.OK(c, gin.H{"data": a})
}

// ------------------------------
// POST /api/artworks
// ------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req ArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	a := req.Fields().NewArtwork(h.now())
	if err := h.store.Create(c.Request.Context(), &a); err != nil {
		respond.Error(c, err, "Failed to create artwork", logging.Fields{"user_email": a.UserEmail})
		return
	}

	logging.FromContext(c.Request.Context()).Info("Artwork created", logging.Fields{"artwork_id": a.ID})
	respond.OK(c, gin.H{"id": a.ID, "message": "Artwork created successfully"})
}

// ------------------------------
// PUT /api/artworks/:id
// ------------------------------
func (h *Handler) Update(c *gin.Context) {
	id, ok := respond.ArtworkID(c, "id")
	if !ok {
		return
	}

	var req ArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.store.Update(c.Request.Context(), id, req.Fields()); err != nil {
		respond.Error(c, err, "Failed to update artwork", logging.Fields{"artwork_id": id})
		return
	}
	respond.OK(c, gin.H{"message": "Artwork updated successfully"})
}

// ------------------------------
// DELETE /api/artworks/:id  (cascades to favorites)
// ------------------------------
func (h *Handler) Delete(c *gin.Context) {
	id, ok := respond.ArtworkID(c, "id")
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, err, "Failed to delete artwork", logging.Fields{"artwork_id": id})
		return
	}

	logging.FromContext(c.Request.Context()).Info("Artwork deleted", logging.Fields{"artwork_id": id})
	respond.OK(c, gin.H{"message": "Artwork deleted successfully"})
}

// ------------------------------
// POST /api/artworks/:id/like  body: {userId}
// ------------------------------
func (h *Handler) ToggleLike(c *gin.Context) {
	id, ok := respond.ArtworkID(c, "id")
	if !ok {
		return
	}

	var req LikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Fail(c, http.StatusBadRequest, "userId is required")
		return
	}

	like, err := h.store.ToggleLike(c.Request.Context(), id, req.UserID)
	if err != nil {
		respond.Error(c, err, "Failed to toggle like", logging.Fields{"artwork_id": id, "user_id": req.UserID})
		return
	}

	c.JSON(http.StatusOK, LikeResponse{Success: true, IsLiked: like.IsLiked, Likes: like.Count})
}

// ------------------------------
// GET /api/artworks/:id/liked/:userId
// ------------------------------
func (h *Handler) LikeStatus(c *gin.Context) {
	id, ok := respond.ArtworkID(c, "id")
	if !ok {
		return
	}
	userID := c.Param("userId")

	liked, err := h.store.IsLiked(c.Request.Context(), id, userID)
	if err != nil {
		respond.Error(c, err, "Failed to check like status", logging.Fields{"artwork_id": id, "user_id": userID})
		return
	}
	respond.OK(c, gin.H{"isLiked": liked})
}
