// Package seed fills an empty store with the demo inventory and accounts.
package seed

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
	"starauto/internal/domain/car"
	"starauto/internal/domain/user"
)

// CarCreator adds a car to the inventory.
type CarCreator interface {
	Create(ctx context.Context, in car.Input) (car.Car, error)
}

// UserProvisioner creates an account with a fixed role.
type UserProvisioner interface {
	Provision(ctx context.Context, in user.RegisterInput, role string) (user.User, error)
}

type Seeder struct {
	cars  CarCreator
	users UserProvisioner
	log   *slog.Logger
}

func New(cars CarCreator, users UserProvisioner, log *slog.Logger) *Seeder {
	return &Seeder{
		cars:  cars,
		users: users,
		log:   log.With("component", "seed"),
	}
}

// Result counts what Run created.
type Result struct {
	Users int
	Cars  int
}

// Reset empties the given collections.
func (s *Seeder) Reset(ctx context.Context, cols ...docstore.Collection) error {
	for _, c := range cols {
		n, err := c.DeleteMany(ctx, nil)
		if err != nil {
			return fmt.Errorf("clear collection: %w", err)
		}
		s.log.Info("collection cleared", "removed", n)
	}
	return nil
}

// Run creates the admin and client accounts and the sample cars.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	var res Result

	accounts := []struct {
		in   user.RegisterInput
		role string
	}{
		{Admin, user.RoleAdmin},
		{Client, user.RoleClient},
	}
	for _, a := range accounts {
		u, err := s.users.Provision(ctx, a.in, a.role)
		if err != nil {
			return res, fmt.Errorf("create %s: %w", a.in.Email, err)
		}
		s.log.Info("user created", "email", u.Email, "role", u.Role)
		res.Users++
	}

	for _, in := range Cars {
		if _, err := s.cars.Create(ctx, in); err != nil {
			return res, fmt.Errorf("create car %s %s: %w", in.Marque, in.Modele, err)
		}
		res.Cars++
	}
	s.log.Info("sample cars created", "count", res.Cars)

	return res, nil
}
