package favorite

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"starauto/internal/domain/car"
)

// Cars is the part of the catalog favorites need.
type Cars interface {
	Get(ctx context.Context, id string) (car.Car, error)
}

type Servicer interface {
	List(ctx context.Context, userID string) ([]car.Car, error)
	Add(ctx context.Context, userID, carID string) ([]string, error)
	Remove(ctx context.Context, userID, carID string) ([]string, error)
	IsFavorite(ctx context.Context, userID, carID string) (bool, error)
	ForgetUser(ctx context.Context, userID string) error
}

type Service struct {
	repo Repository
	cars Cars
	log  *slog.Logger
}

func NewService(repo Repository, cars Cars, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		cars: cars,
		log:  log.With("component", "favorite_service"),
	}
}

// List returns the user's favorite cars in the order they were added.
// Favorites whose car no longer exists are skipped.
func (s *Service) List(ctx context.Context, userID string) ([]car.Car, error) {
	favs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}

	cars := make([]car.Car, 0, len(favs))
	for _, f := range favs {
		c, err := s.cars.Get(ctx, f.CarID)
		if errors.Is(err, car.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load favorite car %s: %w", f.CarID, err)
		}
		cars = append(cars, c)
	}
	return cars, nil
}

// Add returns the user's favorite car ids after adding carID.
func (s *Service) Add(ctx context.Context, userID, carID string) ([]string, error) {
	if _, err := s.cars.Get(ctx, carID); err != nil {
		if errors.Is(err, car.ErrNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, fmt.Errorf("load car: %w", err)
	}

	existing, err := s.repo.Find(ctx, userID, carID)
	if err != nil {
		return nil, fmt.Errorf("find favorite: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyFavorite
	}

	if _, err := s.repo.Add(ctx, userID, carID); err != nil {
		if errors.Is(err, ErrAlreadyFavorite) {
			return nil, ErrAlreadyFavorite
		}
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return s.ids(ctx, userID)
}

// Remove returns the user's favorite car ids after removing carID.
func (s *Service) Remove(ctx context.Context, userID, carID string) ([]string, error) {
	ok, err := s.repo.Remove(ctx, userID, carID)
	if err != nil {
		return nil, fmt.Errorf("remove favorite: %w", err)
	}
	if !ok {
		return nil, ErrNotFavorite
	}
	return s.ids(ctx, userID)
}

func (s *Service) IsFavorite(ctx context.Context, userID, carID string) (bool, error) {
	f, err := s.repo.Find(ctx, userID, carID)
	if err != nil {
		return false, fmt.Errorf("find favorite: %w", err)
	}
	return f != nil, nil
}

// ForgetUser drops every favorite of a deleted user.
func (s *Service) ForgetUser(ctx context.Context, userID string) error {
	n, err := s.repo.RemoveByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("remove user favorites: %w", err)
	}
	s.log.Debug("user favorites removed", "user_id", userID, "count", n)
	return nil
}

func (s *Service) ids(ctx context.Context, userID string) ([]string, error) {
	favs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	ids := make([]string, 0, len(favs))
	for _, f := range favs {
		ids = append(ids, f.CarID)
	}
	return ids, nil
}
