package admin

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"starauto/internal/app/server/api/http/apierr"
	"starauto/internal/app/server/api/http/middleware"
	"starauto/internal/docstore"
)

type Cars interface {
	Count(ctx context.Context) (int, error)
}

type Messages interface {
	Counts(ctx context.Context) (total, unread int, err error)
}

type Clients interface {
	CountClients(ctx context.Context) (int, error)
}

// Store is the mode selector behind every collection.
type Store interface {
	Mode() docstore.Mode
	Reconfigure() docstore.Mode
}

type Handler struct {
	cars     Cars
	messages Messages
	clients  Clients
	store    Store
	log      *slog.Logger
	mw       middleware.Chains
}

func NewHandler(cars Cars, messages Messages, clients Clients, store Store, log *slog.Logger, mw middleware.Chains) *Handler {
	return &Handler{
		cars:     cars,
		messages: messages,
		clients:  clients,
		store:    store,
		log:      log,
		mw:       mw,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.statsOp(), h.stats)
	huma.Register(api, h.storeOp(), h.storeMode)
	huma.Register(api, h.reconfigureOp(), h.reconfigure)
}

func (h *Handler) stats(ctx context.Context, _ *statsInput) (*statsOutput, error) {
	var s Stats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := h.cars.Count(gctx)
		s.Cars = n
		return err
	})
	g.Go(func() error {
		total, unread, err := h.messages.Counts(gctx)
		s.Messages, s.NonLus = total, unread
		return err
	})
	g.Go(func() error {
		n, err := h.clients.CountClients(gctx)
		s.Clients = n
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &statsOutput{Body: StatsResponse{Success: true, Data: s}}, nil
}

func (h *Handler) storeMode(_ context.Context, _ *storeInput) (*storeOutput, error) {
	return &storeOutput{
		Body: StoreResponse{Success: true, Mode: h.store.Mode().String()},
	}, nil
}

func (h *Handler) reconfigure(_ context.Context, _ *storeInput) (*storeOutput, error) {
	prev := h.store.Mode()
	next := h.store.Reconfigure()

	h.log.Info("store reconfigured", slog.String("from", prev.String()), slog.String("to", next.String()))

	return &storeOutput{
		Body: StoreResponse{
			Success:  true,
			Mode:     next.String(),
			Previous: prev.String(),
			Changed:  prev != next,
		},
	}, nil
}
