package document

import (
	"context"

	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
	"starauto/internal/domain/car"
)

type CarRepository struct {
	cars docstore.Collection
	log  *slog.Logger
}

func NewCarRepository(cars docstore.Collection, log *slog.Logger) *CarRepository {
	return &CarRepository{
		cars: cars,
		log:  log,
	}
}

func (r *CarRepository) List(ctx context.Context, annee int) ([]car.Car, error) {
	var f docstore.Filter
	if annee > 0 {
		f = docstore.Filter{docstore.Eq("annee", annee)}
	}
	recs, err := r.cars.Find(ctx, f)
	if err != nil {
		return nil, err
	}
	return docstore.DecodeAll[car.Car](recs)
}

func (r *CarRepository) FindByID(ctx context.Context, id string) (*car.Car, error) {
	return decodeOne[car.Car](r.cars.FindByID(ctx, id))
}

func (r *CarRepository) Create(ctx context.Context, fields map[string]any) (car.Car, error) {
	return decodeNew[car.Car](r.cars.Create(ctx, fields))
}

func (r *CarRepository) Update(ctx context.Context, id string, fields map[string]any) (*car.Car, error) {
	return decodeOne[car.Car](r.cars.UpdateByID(ctx, id, fields, returnUpdated))
}

func (r *CarRepository) Delete(ctx context.Context, id string) (bool, error) {
	rec, err := r.cars.DeleteByID(ctx, id)
	return rec != nil, err
}

func (r *CarRepository) Count(ctx context.Context) (int, error) {
	return r.cars.Count(ctx, nil)
}
