package routes

import (
	"net/http"
	"time"

	favoritesapi "artgallery-api/internal/api/favorites"
	"artgallery-api/internal/api/respond"
	"artgallery-api/internal/api/users"
	worksapi "artgallery-api/internal/api/works"
	"artgallery-api/internal/app/http/middleware"
	"artgallery-api/internal/domain/favorites"
	"artgallery-api/internal/domain/works"
	"artgallery-api/internal/logging"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

type Deps struct {
	Artworks  works.Store
	Favorites favorites.Store
	Logger    logging.Logger
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	if deps.Logger == nil {
		deps.Logger = logging.Nop()
	}
	r.Use(middleware.RequestLogger(deps.Logger))

	artworks := worksapi.NewHandler(deps.Artworks)
	favs := favoritesapi.NewHandler(deps.Favorites)
	usersH := users.NewHandler(deps.Artworks)

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{"message": "Artwork gallery API is running", "version": Version})
	})
	r.GET("/health", func(c *gin.Context) {
		now := time.Now().UTC().Format(time.RFC3339)
		if err := deps.Artworks.Ping(c.Request.Context()); err != nil {
			logging.FromContext(c.Request.Context()).Error("Health check failed", err, nil)
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "status": "unavailable", "timestamp": now})
			return
		}
		respond.OK(c, gin.H{"status": "ok", "timestamp": now})
	})

	// legacy bare array
	r.GET("/arts", artworks.ListAllLegacy)

	api := r.Group("/api")
	api.Use(middleware.SanitizeAndCleanInputMiddleware())

	api.GET("/artworks", artworks.List)
	api.GET("/artworks/featured", artworks.Featured)
	api.GET("/artworks/user/:userId", artworks.ListByUser)
	api.GET("/artworks/:id", artworks.Get)
	api.POST("/artworks", artworks.Create)
	api.PUT("/artworks/:id", artworks.Update)
	api.DELETE("/artworks/:id", artworks.Delete)

	api.POST("/artworks/:id/like", artworks.ToggleLike)
	api.GET("/artworks/:id/liked/:userId", artworks.LikeStatus)

	api.POST("/favorites/:artworkId", favs.Toggle)
	api.GET("/favorites/user/:userId", favs.ListByUser)
	api.GET("/favorites/:artworkId/:userId", favs.Status)

	api.GET("/users/:userEmail/artworks/count", usersH.CountArtworks)
}
