package favorites

import (
	"artgallery-api/internal/domain/works"
	"context"
)

// Store is the persistence port for favorites. Toggle must be atomic per
// (artworkID, userID) and must fail with works.ErrNotFound when favoriting an
// artwork that does not exist.
type Store interface {
	Toggle(ctx context.Context, artworkID, userID string) (bool, error)
	ListArtworks(ctx context.Context, userID string) ([]works.Artwork, error)
	Exists(ctx context.Context, artworkID, userID string) (bool, error)
}
