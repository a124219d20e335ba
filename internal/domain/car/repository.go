package car

import "context"

type Repository interface {
	// List returns every car, restricted to one model year when annee > 0.
	List(ctx context.Context, annee int) ([]Car, error)
	FindByID(ctx context.Context, id string) (*Car, error)
	Create(ctx context.Context, fields map[string]any) (Car, error)
	Update(ctx context.Context, id string, fields map[string]any) (*Car, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)
}
