package document

import (
	"context"
	"errors"

	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
	"starauto/internal/domain/favorite"
)

type FavoriteRepository struct {
	favorites docstore.Collection
	log       *slog.Logger
}

func NewFavoriteRepository(favorites docstore.Collection, log *slog.Logger) *FavoriteRepository {
	return &FavoriteRepository{
		favorites: favorites,
		log:       log,
	}
}

func pair(userID, carID string) docstore.Filter {
	return docstore.Filter{docstore.Eq("userId", userID), docstore.Eq("carId", carID)}
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID string) ([]favorite.Favorite, error) {
	recs, err := r.favorites.Find(ctx, docstore.Filter{docstore.Eq("userId", userID)})
	if err != nil {
		return nil, err
	}
	return docstore.DecodeAll[favorite.Favorite](recs)
}

func (r *FavoriteRepository) Find(ctx context.Context, userID, carID string) (*favorite.Favorite, error) {
	return decodeOne[favorite.Favorite](r.favorites.FindOne(ctx, pair(userID, carID)))
}

// favoriteID is derived from the pair so the store's unique id check
// rejects a second insert of the same favorite.
func favoriteID(userID, carID string) string {
	return userID + ":" + carID
}

func (r *FavoriteRepository) Add(ctx context.Context, userID, carID string) (favorite.Favorite, error) {
	f, err := decodeNew[favorite.Favorite](r.favorites.Create(ctx, docstore.Record{
		"id":     favoriteID(userID, carID),
		"userId": userID,
		"carId":  carID,
	}))
	if errors.Is(err, docstore.ErrConflict) {
		return f, favorite.ErrAlreadyFavorite
	}
	return f, err
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, carID string) (bool, error) {
	rec, err := r.favorites.DeleteOne(ctx, pair(userID, carID))
	return rec != nil, err
}

func (r *FavoriteRepository) RemoveByUser(ctx context.Context, userID string) (int, error) {
	return r.favorites.DeleteMany(ctx, docstore.Filter{docstore.Eq("userId", userID)})
}
