package works

import (
	"artgallery-api/internal/domain/works"
)

// ---------- requests

// ArtworkRequest is the body of create and update. Price may arrive as a
// number or a string. medium and imageUrl are accepted as older spellings of
// mediumTools and image.
type ArtworkRequest struct {
	Image    string `json:"image"`
	ImageURL string `json:"imageUrl"`

	Title       string `json:"title"`
	Category    string `json:"category"`
	MediumTools string `json:"mediumTools"`
	Medium      string `json:"medium"`
	Description string `json:"description"`
	Dimensions  string `json:"dimensions"`

	Price      interface{} `json:"price"`
	Visibility string      `json:"visibility"`

	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

type LikeRequest struct {
	UserID string `json:"userId" binding:"required"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (r ArtworkRequest) Fields() works.Fields {
	return works.Fields{
		Image:       firstNonEmpty(r.Image, r.ImageURL),
		Title:       r.Title,
		Category:    r.Category,
		MediumTools: firstNonEmpty(r.MediumTools, r.Medium),
		Description: r.Description,
		Dimensions:  r.Dimensions,
		Price:       works.ParsePrice(r.Price),
		Visibility:  r.Visibility,
		UserName:    r.UserName,
		UserEmail:   r.UserEmail,
	}
}

// ---------- responses

type LikeResponse struct {
	Success bool `json:"success"`
	IsLiked bool `json:"isLiked"`
	Likes   int  `json:"likes"`
}
