package car

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	List(ctx context.Context, q Query) ([]Car, error)
	Get(ctx context.Context, id string) (Car, error)
	Create(ctx context.Context, in Input) (Car, error)
	Update(ctx context.Context, id string, u Update) (Car, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "car_service"),
	}
}

func (s *Service) List(ctx context.Context, q Query) ([]Car, error) {
	cars, err := s.repo.List(ctx, q.Annee)
	if err != nil {
		return nil, fmt.Errorf("list cars: %w", err)
	}
	return q.Apply(cars), nil
}

func (s *Service) Get(ctx context.Context, id string) (Car, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return Car{}, fmt.Errorf("get car: %w", err)
	}
	if c == nil {
		return Car{}, ErrNotFound
	}
	return *c, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Car, error) {
	if err := in.validate(); err != nil {
		return Car{}, err
	}

	c, err := s.repo.Create(ctx, in.fields())
	if err != nil {
		return Car{}, fmt.Errorf("create car: %w", err)
	}
	s.log.Info("car created", "id", c.ID, "marque", c.Marque, "modele", c.Modele)
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, u Update) (Car, error) {
	if err := u.validate(); err != nil {
		return Car{}, err
	}

	c, err := s.repo.Update(ctx, id, u.fields())
	if err != nil {
		return Car{}, fmt.Errorf("update car: %w", err)
	}
	if c == nil {
		return Car{}, ErrNotFound
	}
	return *c, nil
}

// Delete removes the listing only. Favorites pointing at it are left in place
// and skipped when listed.
func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete car: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	s.log.Info("car deleted", "id", id)
	return nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count cars: %w", err)
	}
	return n, nil
}
