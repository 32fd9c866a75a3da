package works

import "context"

// Query narrows a listing. Zero values mean "no filter".
type Query struct {
	Visibility  string
	UserEmail   string
	NewestFirst bool
	Limit       int
}

// Like is the state of an (artwork, user) pair after a toggle.
type Like struct {
	IsLiked bool
	Count   int
}

// Store is the persistence port for artworks. Implementations must make
// ToggleLike atomic per artwork and cascade Delete to the artwork's favorites.
type Store interface {
	List(ctx context.Context, q Query) ([]Artwork, error)
	Get(ctx context.Context, id string) (*Artwork, error)
	Create(ctx context.Context, a *Artwork) error
	Update(ctx context.Context, id string, f Fields) error
	Delete(ctx context.Context, id string) error
	ToggleLike(ctx context.Context, id, userID string) (Like, error)
	IsLiked(ctx context.Context, id, userID string) (bool, error)
	CountByUser(ctx context.Context, userEmail string) (int64, error)
	Ping(ctx context.Context) error
}
