package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
)

// StoreMode reports which backing store serves requests.
type StoreMode interface {
	Mode() docstore.Mode
}

type Handler struct {
	store      StoreMode
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(store StoreMode, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		store:      store,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *Input) (*Output, error) {
	h.log.Debug("health check request received")

	return &Output{
		Body: Response{
			Status: "OK",
			Store:  h.store.Mode().String(),
		},
	}, nil
}
