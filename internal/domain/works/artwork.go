package works

import (
	"time"

	"github.com/lib/pq"
)

const (
	VisibilityPublic  = "Public"
	VisibilityPrivate = "Private"

	// FeaturedLimit caps the featured listing.
	FeaturedLimit = 6
)

type Artwork struct {
	ID string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	Image       string  `gorm:"type:text" json:"image"`
	Title       string  `json:"title"`
	Category    string  `gorm:"index" json:"category"`
	MediumTools string  `gorm:"column:medium_tools" json:"mediumTools"`
	Description string  `gorm:"type:text" json:"description"`
	Dimensions  string  `gorm:"not null;default:''" json:"dimensions"`
	Price       float64 `gorm:"not null;default:0" json:"price"`
	Visibility  string  `gorm:"index" json:"visibility"`

	UserName  string `json:"userName"`
	UserEmail string `gorm:"index" json:"userEmail"`

	// LikesCount always equals len(LikedBy); both are only changed together.
	LikesCount int            `gorm:"not null;default:0" json:"likesCount"`
	LikedBy    pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"likedBy"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsLikedBy reports whether userID is in the LikedBy set.
func (a Artwork) IsLikedBy(userID string) bool {
	for _, u := range a.LikedBy {
		if u == userID {
			return true
		}
	}
	return false
}

// Fields is the caller-editable part of an Artwork, used by create and update.
type Fields struct {
	Image       string
	Title       string
	Category    string
	MediumTools string
	Description string
	Dimensions  string
	Price       float64
	Visibility  string
	UserName    string
	UserEmail   string
}

// NewArtwork builds a fresh record with zero likes.
func (f Fields) NewArtwork(now time.Time) Artwork {
	return Artwork{
		Image:       f.Image,
		Title:       f.Title,
		Category:    f.Category,
		MediumTools: f.MediumTools,
		Description: f.Description,
		Dimensions:  f.Dimensions,
		Price:       f.Price,
		Visibility:  f.Visibility,
		UserName:    f.UserName,
		UserEmail:   f.UserEmail,
		LikesCount:  0,
		LikedBy:     pq.StringArray{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Apply overwrites every editable field of a.
func (f Fields) Apply(a *Artwork, now time.Time) {
	a.Image = f.Image
	a.Title = f.Title
	a.Category = f.Category
	a.MediumTools = f.MediumTools
	a.Description = f.Description
	a.Dimensions = f.Dimensions
	a.Price = f.Price
	a.Visibility = f.Visibility
	a.UserName = f.UserName
	a.UserEmail = f.UserEmail
	a.UpdatedAt = now
}

// Columns maps the fields to column names for a gorm Updates call.
func (f Fields) Columns(now time.Time) map[string]interface{} {
	return map[string]interface{}{
		"image":        f.Image,
		"title":        f.Title,
		"category":     f.Category,
		"medium_tools": f.MediumTools,
		"description":  f.Description,
		"dimensions":   f.Dimensions,
		"price":        f.Price,
		"visibility":   f.Visibility,
		"user_name":    f.UserName,
		"user_email":   f.UserEmail,
		"updated_at":   now,
	}
}
