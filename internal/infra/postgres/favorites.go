package postgres

import (
	"context"
	"errors"
	"fmt"

	"artgallery-api/internal/domain/favorites"
	"artgallery-api/internal/domain/works"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func userFavoritesQuery(db *gorm.DB, userID string) *gorm.DB {
	return db.Model(&favorites.Favorite{}).Where("user_id = ?", userID)
}

// Toggle removes the (artwork, user) favorite if present, otherwise inserts one
// carrying a snapshot of the artwork. The artwork row lock serializes concurrent
// toggles on the same artwork.
func (s *Store) Toggle(ctx context.Context, artworkID, userID string) (bool, error) {
	favorited := false

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, lockErr := lockArtwork(tx, artworkID)
		if lockErr != nil && !errors.Is(lockErr, works.ErrNotFound) {
			return lockErr
		}

		// an orphaned favorite can still be removed after its artwork is gone
		res := tx.Where("artwork_id = ? AND user_id = ?", artworkID, userID).Delete(&favorites.Favorite{})
		if res.Error != nil {
			return fmt.Errorf("remove favorite: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}
		if lockErr != nil {
			return lockErr
		}

		fav := favorites.New(*a, userID, s.now())
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
			return fmt.Errorf("add favorite: %w", err)
		}
		favorited = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return favorited, nil
}

func (s *Store) ListArtworks(ctx context.Context, userID string) ([]works.Artwork, error) {
	var favs []favorites.Favorite
	if err := userFavoritesQuery(s.db.WithContext(ctx), userID).
		Order("created_at DESC").
		Find(&favs).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	out := make([]works.Artwork, 0, len(favs))
	for _, f := range favs {
		out = append(out, f.Artwork.Data())
	}
	return out, nil
}

func (s *Store) Exists(ctx context.Context, artworkID, userID string) (bool, error) {
	var n int64
	if err := userFavoritesQuery(s.db.WithContext(ctx), userID).
		Where("artwork_id = ?", artworkID).
		Count(&n).Error; err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return n > 0, nil
}
