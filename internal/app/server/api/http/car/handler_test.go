package car

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"starauto/internal/app/server/api/http/middleware"
	"starauto/internal/domain/car"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, q car.Query) ([]car.Car, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]car.Car), args.Error(1)
}

func (m *MockService) Get(ctx context.Context, id string) (car.Car, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(car.Car), args.Error(1)
}

func (m *MockService) Create(ctx context.Context, in car.Input) (car.Car, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(car.Car), args.Error(1)
}

func (m *MockService) Update(ctx context.Context, id string, u car.Update) (car.Car, error) {
	args := m.Called(ctx, id, u)
	return args.Get(0).(car.Car), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func newHandler(svc *MockService) *Handler {
	return NewHandler(svc, slog.Default(), middleware.Chains{})
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, status, se.GetStatus())
}

func TestListInput_Query(t *testing.T) {
	tests := []struct {
		name    string
		input   listInput
		wantMin *float64
		wantMax *float64
	}{
		{name: "no prices", input: listInput{Marque: "bmw"}},
		{name: "min only", input: listInput{MinPrice: 10000}, wantMin: ptr(10000.0)},
		{name: "both", input: listInput{MinPrice: 1, MaxPrice: 2}, wantMin: ptr(1.0), wantMax: ptr(2.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.input.query()
			assert.Equal(t, tt.input.Marque, q.Marque)
			assert.Equal(t, tt.wantMin, q.MinPrice)
			assert.Equal(t, tt.wantMax, q.MaxPrice)
		})
	}
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	h := newHandler(svc)

	cars := []car.Car{{ID: "c1", Marque: "Peugeot"}, {ID: "c2", Marque: "Renault"}}
	svc.On("List", mock.Anything, car.Query{Sort: car.SortPriceAsc}).Return(cars, nil)

	resp, err := h.list(context.Background(), &listInput{Sort: car.SortPriceAsc})

	require.NoError(t, err)
	assert.True(t, resp.Body.Success)
	assert.Equal(t, 2, resp.Body.Count)
	assert.Equal(t, cars, resp.Body.Data)
}

func TestHandler_Get_NotFound(t *testing.T) {
	svc := new(MockService)
	h := newHandler(svc)
	svc.On("Get", mock.Anything, "missing").Return(car.Car{}, car.ErrNotFound)

	resp, err := h.get(context.Background(), &idInput{ID: "missing"})

	assert.Nil(t, resp)
	requireStatus(t, err, http.StatusNotFound)
}

func TestHandler_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockService)
		h := newHandler(svc)

		input := &createInput{Body: CarBody{Marque: "Peugeot", Modele: "208", Annee: 2022, Prix: 18500, Description: "Citadine"}}
		svc.On("Create", mock.Anything, mock.MatchedBy(func(in car.Input) bool {
			return in.Marque == "Peugeot" && in.Modele == "208" && in.Disponibilite == nil
		})).Return(car.Car{ID: "c1", Marque: "Peugeot"}, nil)

		resp, err := h.create(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "c1", resp.Body.Data.ID)
	})

	t.Run("Validation", func(t *testing.T) {
		svc := new(MockService)
		h := newHandler(svc)
		svc.On("Create", mock.Anything, mock.Anything).
			Return(car.Car{}, fmt.Errorf("%w: marque is required", car.ErrInvalidInput))

		_, err := h.create(context.Background(), &createInput{})

		requireStatus(t, err, http.StatusBadRequest)
		assert.Contains(t, err.Error(), "marque is required")
	})
}

func TestHandler_Update(t *testing.T) {
	svc := new(MockService)
	h := newHandler(svc)

	prix := 17000.0
	input := &updateInput{ID: "c1", Body: CarPatchBody{Prix: &prix}}
	svc.On("Update", mock.Anything, "c1", car.Update{Prix: &prix}).Return(car.Car{ID: "c1", Prix: prix}, nil)

	resp, err := h.update(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, prix, resp.Body.Data.Prix)
}

func TestHandler_Delete(t *testing.T) {
	svc := new(MockService)
	h := newHandler(svc)
	svc.On("Delete", mock.Anything, "c1").Return(nil)

	resp, err := h.delete(context.Background(), &idInput{ID: "c1"})

	require.NoError(t, err)
	assert.True(t, resp.Body.Success)
	svc.AssertExpectations(t)
}

func ptr[T any](v T) *T { return &v }
