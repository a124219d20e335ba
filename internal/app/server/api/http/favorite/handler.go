package favorite

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"starauto/internal/app/server/api/http/apierr"
	"starauto/internal/app/server/api/http/middleware"
	"starauto/internal/app/server/api/http/middleware/auth"
	"starauto/internal/domain/favorite"
)

type Handler struct {
	service favorite.Servicer
	log     *slog.Logger
	mw      middleware.Chains
}

func NewHandler(service favorite.Servicer, log *slog.Logger, mw middleware.Chains) *Handler {
	return &Handler{
		service: service,
		log:     log,
		mw:      mw,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.removeOp(), h.remove)
	huma.Register(api, h.checkOp(), h.check)
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	cars, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{
		Body: FavoriteListResponse{Success: true, Count: len(cars), Favorites: cars},
	}, nil
}

func (h *Handler) add(ctx context.Context, input *carInput) (*changeOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	ids, err := h.service.Add(ctx, userID, input.CarID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &changeOutput{
		Body: ChangeResponse{Success: true, Message: "Car added to favorites", Favorites: ids},
	}, nil
}

func (h *Handler) remove(ctx context.Context, input *carInput) (*changeOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	ids, err := h.service.Remove(ctx, userID, input.CarID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &changeOutput{
		Body: ChangeResponse{Success: true, Message: "Car removed from favorites", Favorites: ids},
	}, nil
}

func (h *Handler) check(ctx context.Context, input *carInput) (*checkOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	fav, err := h.service.IsFavorite(ctx, userID, input.CarID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &checkOutput{Body: CheckResponse{Success: true, IsFavorite: fav}}, nil
}
