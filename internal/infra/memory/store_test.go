package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"artgallery-api/internal/domain/works"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tickingClock returns a clock that advances one second per call.
func tickingClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func newArtwork(t *testing.T, s *Store, f works.Fields) works.Artwork {
	t.Helper()
	a := f.NewArtwork(s.now())
	require.NoError(t, s.Create(context.Background(), &a))
	return a
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := New().WithClock(tickingClock())

	a := newArtwork(t, s, works.Fields{Title: "Sunset", UserEmail: "a@x.com", Visibility: "Public"})
	require.True(t, works.ValidID(a.ID))

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sunset", got.Title)
	assert.Equal(t, 0, got.LikesCount)
	assert.Empty(t, got.LikedBy)

	_, err = s.Get(ctx, "3f0c1a9e-6a57-4f6f-9f0e-2b7d1c1f8a10")
	assert.ErrorIs(t, err, works.ErrNotFound)
}

func TestGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := New()
	a := newArtwork(t, s, works.Fields{Title: "A"})
	_, err := s.ToggleLike(ctx, a.ID, "u1")
	require.NoError(t, err)

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	got.LikedBy[0] = "mutated"

	again, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, []string(again.LikedBy))
}

func TestListFilters(t *testing.T) {
	ctx := context.Background()
	s := New().WithClock(tickingClock())

	first := newArtwork(t, s, works.Fields{Title: "1", UserEmail: "a@x.com", Visibility: "Public"})
	newArtwork(t, s, works.Fields{Title: "2", UserEmail: "b@x.com", Visibility: "Private"})
	third := newArtwork(t, s, works.Fields{Title: "3", UserEmail: "a@x.com", Visibility: "Public"})

	all, err := s.List(ctx, works.Query{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	public, err := s.List(ctx, works.Query{Visibility: "Public"})
	require.NoError(t, err)
	assert.Len(t, public, 2)

	mine, err := s.List(ctx, works.Query{UserEmail: "a@x.com", NewestFirst: true})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, third.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	n, err := s.CountByUser(ctx, "a@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = s.CountByUser(ctx, "nobody@x.com")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)
}

func TestFeaturedLimitAndOrder(t *testing.T) {
	ctx := context.Background()
	s := New().WithClock(tickingClock())

	var ids []string
	for i := 0; i < 8; i++ {
		ids = append(ids, newArtwork(t, s, works.Fields{Title: fmt.Sprint(i)}).ID)
	}

	got, err := s.List(ctx, works.Query{NewestFirst: true, Limit: works.FeaturedLimit})
	require.NoError(t, err)
	require.Len(t, got, works.FeaturedLimit)
	for i, a := range got {
		assert.Equal(t, ids[len(ids)-1-i], a.ID)
	}
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	s := New().WithClock(tickingClock())
	a := newArtwork(t, s, works.Fields{Title: "Old", Price: 1})
	_, err := s.ToggleLike(ctx, a.ID, "u1")
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, a.ID, works.Fields{Title: "New", Price: 2}))
	// same values again still counts as a match
	require.NoError(t, s.Update(ctx, a.ID, works.Fields{Title: "New", Price: 2}))

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Title)
	assert.Equal(t, 2.0, got.Price)
	assert.Equal(t, 1, got.LikesCount)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	err = s.Update(ctx, "3f0c1a9e-6a57-4f6f-9f0e-2b7d1c1f8a10", works.Fields{})
	assert.ErrorIs(t, err, works.ErrNotFound)
}

func TestToggleLikeRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()
	a := newArtwork(t, s, works.Fields{Title: "A"})

	like, err := s.ToggleLike(ctx, a.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, works.Like{IsLiked: true, Count: 1}, like)

	liked, err := s.IsLiked(ctx, a.ID, "u1")
	require.NoError(t, err)
	assert.True(t, liked)

	like, err = s.ToggleLike(ctx, a.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, works.Like{IsLiked: false, Count: 0}, like)

	liked, err = s.IsLiked(ctx, a.ID, "u1")
	require.NoError(t, err)
	assert.False(t, liked)

	_, err = s.ToggleLike(ctx, "3f0c1a9e-6a57-4f6f-9f0e-2b7d1c1f8a10", "u1")
	assert.ErrorIs(t, err, works.ErrNotFound)
	_, err = s.IsLiked(ctx, "3f0c1a9e-6a57-4f6f-9f0e-2b7d1c1f8a10", "u1")
	assert.ErrorIs(t, err, works.ErrNotFound)
}

func TestLikesCountMatchesLikedBy(t *testing.T) {
	ctx := context.Background()
	s := New()
	a := newArtwork(t, s, works.Fields{Title: "A"})

	sequence := []string{"u1", "u2", "u1", "u3", "u2", "u2", "u4", "u3"}
	for _, u := range sequence {
		_, err := s.ToggleLike(ctx, a.ID, u)
		require.NoError(t, err)

		got, err := s.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, len(got.LikedBy), got.LikesCount)
	}

	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"u2", "u4"}, []string(got.LikedBy))
}

func TestConcurrentLikeTogglesStayConsistent(t *testing.T) {
	ctx := context.Background()
	s := New()
	a := newArtwork(t, s, works.Fields{Title: "A"})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.ToggleLike(ctx, a.ID, "u1")
		}()
	}
	wg.Wait()

	// an even number of toggles returns to the start
	got, err := s.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.LikesCount)
	assert.Empty(t, got.LikedBy)
}

func TestFavoriteToggleRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New()
	a := newArtwork(t, s, works.Fields{Title: "A"})

	on, err := s.Toggle(ctx, a.ID, "u1")
	require.NoError(t, err)
	assert.True(t, on)

	exists, err := s.Exists(ctx, a.ID, "u1")
	require.NoError(t, err)
	assert.True(t, exists)

	off, err := s.Toggle(ctx, a.ID, "u1")
	require.NoError(t, err)
	assert.False(t, off)

	exists, err = s.Exists(ctx, a.ID, "u1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFavoriteUnknownArtwork(t *testing.T) {
	s := New()
	_, err := s.Toggle(context.Background(), "3f0c1a9e-6a57-4f6f-9f0e-2b7d1c1f8a10", "u1")
	assert.ErrorIs(t, err, works.ErrNotFound)
}

func TestFavoriteSnapshotIsNotSynced(t *testing.T) {
	ctx := context.Background()
	s := New().WithClock(tickingClock())
	a := newArtwork(t, s, works.Fields{Title: "Original"})
	b := newArtwork(t, s, works.Fields{Title: "Second"})

	_, err := s.Toggle(ctx, a.ID, "u1")
	require.NoError(t, err)
	_, err = s.Toggle(ctx, b.ID, "u1")
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, a.ID, works.Fields{Title: "Renamed"}))

	favs, err := s.ListArtworks(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, favs, 2)
	assert.Equal(t, "Second", favs[0].Title)
	assert.Equal(t, "Original", favs[1].Title)

	none, err := s.ListArtworks(ctx, "u2")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestDeleteCascadesFavorites(t *testing.T) {
	ctx := context.Background()
	s := New()
	a := newArtwork(t, s, works.Fields{Title: "A"})
	b := newArtwork(t, s, works.Fields{Title: "B"})

	for _, u := range []string{"u1", "u2"} {
		_, err := s.Toggle(ctx, a.ID, u)
		require.NoError(t, err)
	}
	_, err := s.Toggle(ctx, b.ID, "u1")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, a.ID))

	_, err = s.Get(ctx, a.ID)
	assert.ErrorIs(t, err, works.ErrNotFound)
	for _, u := range []string{"u1", "u2"} {
		exists, err := s.Exists(ctx, a.ID, u)
		require.NoError(t, err)
		assert.False(t, exists)
	}
	exists, err := s.Exists(ctx, b.ID, "u1")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.ErrorIs(t, s.Delete(ctx, a.ID), works.ErrNotFound)
}

func TestConcurrentFavoriteTogglesFollowParity(t *testing.T) {
	ctx := context.Background()

	for _, n := range []int{50, 51} {
		s := New()
		a := newArtwork(t, s, works.Fields{Title: "A"})

		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Toggle(ctx, a.ID, "u1")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		exists, err := s.Exists(ctx, a.ID, "u1")
		require.NoError(t, err)
		assert.Equal(t, n%2 == 1, exists, "n=%d", n)

		favs, err := s.ListArtworks(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, favs, n%2, "n=%d", n)
	}
}
