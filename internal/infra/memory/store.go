package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"artgallery-api/internal/domain/favorites"
	"artgallery-api/internal/domain/works"

	"github.com/google/uuid"
)

type artworkRecord struct {
	artwork works.Artwork
	seq     int64
}

type favoriteKey struct {
	artworkID string
	userID    string
}

type favoriteRecord struct {
	favorite favorites.Favorite
	seq      int64
}

// Store keeps artworks and favorites in process memory. A single mutex
// guards both collections, so every toggle is atomic.
type Store struct {
	mu        sync.RWMutex
	seq       int64
	artworks  map[string]*artworkRecord
	favorites map[favoriteKey]*favoriteRecord
	now       func() time.Time
}

var (
	_ works.Store     = (*Store)(nil)
	_ favorites.Store = (*Store)(nil)
)

func New() *Store {
	return &Store{
		artworks:  make(map[string]*artworkRecord),
		favorites: make(map[favoriteKey]*favoriteRecord),
		now:       time.Now,
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) nextSeq() int64 {
	s.seq++
	return s.seq
}

func clone(a works.Artwork) works.Artwork {
	likedBy := make([]string, len(a.LikedBy))
	copy(likedBy, a.LikedBy)
	a.LikedBy = likedBy
	return a
}

func (s *Store) List(_ context.Context, q works.Query) ([]works.Artwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]*artworkRecord, 0, len(s.artworks))
	for _, r := range s.artworks {
		if q.Visibility != "" && r.artwork.Visibility != q.Visibility {
			continue
		}
		if q.UserEmail != "" && r.artwork.UserEmail != q.UserEmail {
			continue
		}
		recs = append(recs, r)
	}

	if q.NewestFirst {
		sort.Slice(recs, func(i, j int) bool {
			a, b := recs[i], recs[j]
			if !a.artwork.CreatedAt.Equal(b.artwork.CreatedAt) {
				return a.artwork.CreatedAt.After(b.artwork.CreatedAt)
			}
			return a.seq > b.seq
		})
	} else {
		sort.Slice(recs, func(i, j int) bool { return recs[i].seq < recs[j].seq })
	}

	if q.Limit > 0 && len(recs) > q.Limit {
		recs = recs[:q.Limit]
	}

	out := make([]works.Artwork, 0, len(recs))
	for _, r := range recs {
		out = append(out, clone(r.artwork))
	}
	return out, nil
}

func (s *Store) Get(_ context.Context, id string) (*works.Artwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.artworks[id]
	if !ok {
		return nil, works.ErrNotFound
	}
	a := clone(r.artwork)
	return &a, nil
}

func (s *Store) Create(_ context.Context, a *works.Artwork) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = uuid.NewString()
	if a.LikedBy == nil {
		a.LikedBy = []string{}
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	s.artworks[a.ID] = &artworkRecord{artwork: clone(*a), seq: s.nextSeq()}
	return nil
}

func (s *Store) Update(_ context.Context, id string, f works.Fields) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.artworks[id]
	if !ok {
		return works.ErrNotFound
	}
	f.Apply(&r.artwork, s.now())
	return nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.artworks[id]; !ok {
		return works.ErrNotFound
	}
	delete(s.artworks, id)
	for k := range s.favorites {
		if k.artworkID == id {
			delete(s.favorites, k)
		}
	}
	return nil
}

func (s *Store) ToggleLike(_ context.Context, id, userID string) (works.Like, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.artworks[id]
	if !ok {
		return works.Like{}, works.ErrNotFound
	}

	a := &r.artwork
	if a.IsLikedBy(userID) {
		kept := a.LikedBy[:0]
		for _, u := range a.LikedBy {
			if u != userID {
				kept = append(kept, u)
			}
		}
		a.LikedBy = kept
	} else {
		a.LikedBy = append(a.LikedBy, userID)
	}
	a.LikesCount = len(a.LikedBy)

	return works.Like{IsLiked: a.IsLikedBy(userID), Count: a.LikesCount}, nil
}

func (s *Store) IsLiked(_ context.Context, id, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.artworks[id]
	if !ok {
		return false, works.ErrNotFound
	}
	return r.artwork.IsLikedBy(userID), nil
}

func (s *Store) CountByUser(_ context.Context, userEmail string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, r := range s.artworks {
		if r.artwork.UserEmail == userEmail {
			n++
		}
	}
	return n, nil
}

func (s *Store) Ping(context.Context) error { return nil }

func (s *Store) Toggle(_ context.Context, artworkID, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := favoriteKey{artworkID: artworkID, userID: userID}
	if _, ok := s.favorites[key]; ok {
		delete(s.favorites, key)
		return false, nil
	}

	r, ok := s.artworks[artworkID]
	if !ok {
		return false, works.ErrNotFound
	}

	fav := favorites.New(clone(r.artwork), userID, s.now())
	fav.ID = uuid.NewString()
	s.favorites[key] = &favoriteRecord{favorite: fav, seq: s.nextSeq()}
	return true, nil
}

func (s *Store) ListArtworks(_ context.Context, userID string) ([]works.Artwork, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]*favoriteRecord, 0)
	for k, r := range s.favorites {
		if k.userID == userID {
			recs = append(recs, r)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i].favorite, recs[j].favorite
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return recs[i].seq > recs[j].seq
	})

	out := make([]works.Artwork, 0, len(recs))
	for _, r := range recs {
		out = append(out, clone(r.favorite.Artwork.Data()))
	}
	return out, nil
}

func (s *Store) Exists(_ context.Context, artworkID, userID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.favorites[favoriteKey{artworkID: artworkID, userID: userID}]
	return ok, nil
}
