package message

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"starauto/internal/app/server/api/http/middleware"
	"starauto/internal/domain/message"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, in message.Input) (message.Message, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(message.Message), args.Error(1)
}

func (m *MockService) Inbox(ctx context.Context) (message.Inbox, error) {
	args := m.Called(ctx)
	return args.Get(0).(message.Inbox), args.Error(1)
}

func (m *MockService) MarkRead(ctx context.Context, id string, lu bool) (message.Message, error) {
	args := m.Called(ctx, id, lu)
	return args.Get(0).(message.Message), args.Error(1)
}

func (m *MockService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockService) Counts(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

func newHandler(svc *MockService) *Handler {
	return NewHandler(svc, slog.Default(), middleware.Chains{})
}

func TestHandler_Create(t *testing.T) {
	svc := new(MockService)
	h := newHandler(svc)

	input := &createInput{}
	input.Body.Nom = "Jean"
	input.Body.Email = "jean@example.com"
	input.Body.Message = "Toujours disponible ?"
	input.Body.Voiture = "c1"

	svc.On("Create", mock.Anything, message.Input{
		Nom: "Jean", Email: "jean@example.com", Message: "Toujours disponible ?", Voiture: "c1",
	}).Return(message.Message{ID: "m1", Nom: "Jean"}, nil)

	resp, err := h.create(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, resp.Body.Success)
	assert.Equal(t, "m1", resp.Body.Data.ID)
}

func TestHandler_List(t *testing.T) {
	svc := new(MockService)
	h := newHandler(svc)

	svc.On("Inbox", mock.Anything).Return(message.Inbox{
		Messages: []message.Message{{ID: "m2"}, {ID: "m1", Lu: true}},
		NonLus:   1,
	}, nil)

	resp, err := h.list(context.Background(), &listInput{})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Body.Count)
	assert.Equal(t, 1, resp.Body.NonLus)
	assert.Equal(t, "m2", resp.Body.Messages[0].ID)
}

func TestHandler_Mark(t *testing.T) {
	tests := []struct {
		name   string
		body   *MessageMarkBody
		wantLu bool
	}{
		{name: "no body marks read", body: nil, wantLu: true},
		{name: "empty body marks read", body: &MessageMarkBody{}, wantLu: true},
		{name: "explicit unread", body: &MessageMarkBody{Lu: new(bool)}, wantLu: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockService)
			h := newHandler(svc)

			input := &markInput{ID: "m1", Body: tt.body}
			svc.On("MarkRead", mock.Anything, "m1", tt.wantLu).
				Return(message.Message{ID: "m1", Lu: tt.wantLu}, nil)

			resp, err := h.mark(context.Background(), input)

			require.NoError(t, err)
			assert.Equal(t, tt.wantLu, resp.Body.Data.Lu)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_Delete_NotFound(t *testing.T) {
	svc := new(MockService)
	h := newHandler(svc)
	svc.On("Delete", mock.Anything, "ghost").Return(message.ErrNotFound)

	_, err := h.delete(context.Background(), &deleteInput{ID: "ghost"})

	var se huma.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusNotFound, se.GetStatus())
}
