package user

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, fields map[string]any) (User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	// CountByRole accepts the legacy "USER" spelling for clients.
	CountByRole(ctx context.Context, role string) (int, error)
	Update(ctx context.Context, id string, fields map[string]any) (*User, error)
	Delete(ctx context.Context, id string) (bool, error)
}
