package favorites

import (
	"artgallery-api/internal/domain/works"
	"time"

	"gorm.io/datatypes"
)

// Favorite bookmarks an artwork for a user. Artwork is a copy taken when the
// favorite was created and is not updated when the original changes.
type Favorite struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	ArtworkID string `gorm:"type:uuid;not null;index;uniqueIndex:idx_favorites_artwork_user,priority:1" json:"artworkId"`
	UserID    string `gorm:"not null;index;uniqueIndex:idx_favorites_artwork_user,priority:2" json:"userId"`

	Artwork datatypes.JSONType[works.Artwork] `gorm:"type:jsonb;not null" json:"artwork"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// New snapshots a into a favorite for userID.
func New(a works.Artwork, userID string, now time.Time) Favorite {
	return Favorite{
		ArtworkID: a.ID,
		UserID:    userID,
		Artwork:   datatypes.NewJSONType(a),
		CreatedAt: now,
	}
}
