package car

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"starauto/internal/app/server/api/http/apierr"
	"starauto/internal/app/server/api/http/middleware"
	"starauto/internal/domain/car"
)

type Handler struct {
	service car.Servicer
	log     *slog.Logger
	mw      middleware.Chains
}

func NewHandler(service car.Servicer, log *slog.Logger, mw middleware.Chains) *Handler {
	return &Handler{
		service: service,
		log:     log,
		mw:      mw,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	cars, err := h.service.List(ctx, input.query())
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{
		Body: CarListResponse{Success: true, Count: len(cars), Data: cars},
	}, nil
}

func (h *Handler) get(ctx context.Context, input *idInput) (*carOutput, error) {
	c, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &carOutput{Body: CarResponse{Success: true, Data: c}}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*carOutput, error) {
	c, err := h.service.Create(ctx, input.Body.input())
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &carOutput{Body: CarResponse{Success: true, Data: c}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*carOutput, error) {
	c, err := h.service.Update(ctx, input.ID, input.Body.update())
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &carOutput{Body: CarResponse{Success: true, Data: c}}, nil
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &deleteOutput{
		Body: CarDeleteResponse{Success: true, Message: "Car deleted successfully"},
	}, nil
}
