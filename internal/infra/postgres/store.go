package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"artgallery-api/internal/domain/favorites"
	"artgallery-api/internal/domain/works"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements works.Store and favorites.Store on a shared gorm pool.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

var (
	_ works.Store     = (*Store)(nil)
	_ favorites.Store = (*Store)(nil)
)

func New(db *gorm.DB) (*Store, error) {
	if db == nil {
		return nil, fmt.Errorf("gorm.DB cannot be nil")
	}
	return &Store{db: db, now: time.Now}, nil
}

func artworksQuery(db *gorm.DB, q works.Query) *gorm.DB {
	tx := db.Model(&works.Artwork{})
	if q.Visibility != "" {
		tx = tx.Where("visibility = ?", q.Visibility)
	}
	if q.UserEmail != "" {
		tx = tx.Where("user_email = ?", q.UserEmail)
	}
	if q.NewestFirst {
		tx = tx.Order("created_at DESC")
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}
	return tx
}

func (s *Store) List(ctx context.Context, q works.Query) ([]works.Artwork, error) {
	out := make([]works.Artwork, 0)
	if err := artworksQuery(s.db.WithContext(ctx), q).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list artworks: %w", err)
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (*works.Artwork, error) {
	var a works.Artwork
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, works.ErrNotFound
		}
		return nil, fmt.Errorf("get artwork: %w", err)
	}
	return &a, nil
}

func (s *Store) Create(ctx context.Context, a *works.Artwork) error {
	if a.LikedBy == nil {
		a.LikedBy = []string{}
	}
	if err := s.db.WithContext(ctx).Create(a).Error; err != nil {
		if isDataError(err) {
			return fmt.Errorf("%w: %w", works.ErrValidation, err)
		}
		return fmt.Errorf("create artwork: %w", err)
	}
	return nil
}

// isDataError reports whether Postgres rejected the row itself (SQLSTATE
// classes 22 and 23) rather than failing to run the statement.
func isDataError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23")
}

func (s *Store) Update(ctx context.Context, id string, f works.Fields) error {
	res := s.db.WithContext(ctx).
		Model(&works.Artwork{}).
		Where("id = ?", id).
		Updates(f.Columns(s.now()))
	if res.Error != nil {
		return fmt.Errorf("update artwork: %w", res.Error)
	}
	// Postgres counts matched rows, so an unchanged record still reports 1.
	if res.RowsAffected == 0 {
		return works.ErrNotFound
	}
	return nil
}

// Delete removes the artwork and every favorite pointing at it in one transaction.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&works.Artwork{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete artwork: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return works.ErrNotFound
		}

		if err := tx.Where("artwork_id = ?", id).Delete(&favorites.Favorite{}).Error; err != nil {
			return fmt.Errorf("delete favorites of artwork: %w", err)
		}
		return nil
	})
}

// lockArtwork loads the artwork row with FOR UPDATE, serializing toggles on it.
func lockArtwork(tx *gorm.DB, id string) (*works.Artwork, error) {
	var a works.Artwork
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, works.ErrNotFound
		}
		return nil, fmt.Errorf("lock artwork: %w", err)
	}
	return &a, nil
}

func (s *Store) ToggleLike(ctx context.Context, id, userID string) (works.Like, error) {
	var out works.Like

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := lockArtwork(tx, id)
		if err != nil {
			return err
		}

		q := tx.Model(&works.Artwork{})
		var updates map[string]interface{}
		if a.IsLikedBy(userID) {
			q = q.Where("id = ? AND ? = ANY(liked_by)", id, userID)
			updates = map[string]interface{}{
				"liked_by":    gorm.Expr("array_remove(liked_by, ?)", userID),
				"likes_count": gorm.Expr("likes_count - 1"),
			}
			out = works.Like{IsLiked: false, Count: a.LikesCount - 1}
		} else {
			q = q.Where("id = ? AND NOT (? = ANY(liked_by))", id, userID)
			updates = map[string]interface{}{
				"liked_by":    gorm.Expr("array_append(liked_by, ?)", userID),
				"likes_count": gorm.Expr("likes_count + 1"),
			}
			out = works.Like{IsLiked: true, Count: a.LikesCount + 1}
		}

		res := q.UpdateColumns(updates)
		if res.Error != nil {
			return fmt.Errorf("toggle like: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("toggle like: membership of %q changed under lock", userID)
		}
		return nil
	})
	if err != nil {
		return works.Like{}, err
	}
	return out, nil
}

func (s *Store) IsLiked(ctx context.Context, id, userID string) (bool, error) {
	var a works.Artwork
	err := s.db.WithContext(ctx).Select("id", "liked_by").First(&a, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, works.ErrNotFound
		}
		return false, fmt.Errorf("load likes: %w", err)
	}
	return a.IsLikedBy(userID), nil
}

func (s *Store) CountByUser(ctx context.Context, userEmail string) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&works.Artwork{}).Where("user_email = ?", userEmail).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count artworks: %w", err)
	}
	return n, nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
