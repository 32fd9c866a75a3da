package works

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtworkRequestFields(t *testing.T) {
	f := ArtworkRequest{
		ImageURL:  "https://cdn/x.png",
		Title:     "Sunset",
		Medium:    "Oil",
		Price:     "12.50",
		UserEmail: "a@x.com",
	}.Fields()

	assert.Equal(t, "https://cdn/x.png", f.Image)
	assert.Equal(t, "Oil", f.MediumTools)
	assert.Equal(t, 12.5, f.Price)
	assert.Equal(t, "a@x.com", f.UserEmail)
}

func TestArtworkRequestCanonicalNamesWin(t *testing.T) {
	f := ArtworkRequest{
		Image:       "a.png",
		ImageURL:    "b.png",
		MediumTools: "Ink",
		Medium:      "Oil",
		Price:       float64(3),
	}.Fields()

	assert.Equal(t, "a.png", f.Image)
	assert.Equal(t, "Ink", f.MediumTools)
	assert.Equal(t, 3.0, f.Price)
}

func TestArtworkRequestBadPrice(t *testing.T) {
	assert.Equal(t, 0.0, ArtworkRequest{Price: "abc"}.Fields().Price)
	assert.Equal(t, 0.0, ArtworkRequest{}.Fields().Price)
}
