package favorite

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Favorite, error)
	Find(ctx context.Context, userID, carID string) (*Favorite, error)
	// Add returns ErrAlreadyFavorite when the pair is already stored.
	Add(ctx context.Context, userID, carID string) (Favorite, error)
	Remove(ctx context.Context, userID, carID string) (bool, error)
	RemoveByUser(ctx context.Context, userID string) (int, error)
}
