package message

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"starauto/internal/app/server/api/http/apierr"
	"starauto/internal/app/server/api/http/middleware"
	"starauto/internal/domain/message"
)

type Handler struct {
	service message.Servicer
	log     *slog.Logger
	mw      middleware.Chains
}

func NewHandler(service message.Servicer, log *slog.Logger, mw middleware.Chains) *Handler {
	return &Handler{
		service: service,
		log:     log,
		mw:      mw,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.markOp(), h.mark)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*messageOutput, error) {
	m, err := h.service.Create(ctx, message.Input{
		Nom:       input.Body.Nom,
		Email:     input.Body.Email,
		Sujet:     input.Body.Sujet,
		Message:   input.Body.Message,
		Telephone: input.Body.Telephone,
		Voiture:   input.Body.Voiture,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &messageOutput{Body: MessageResponse{Success: true, Data: m}}, nil
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	inbox, err := h.service.Inbox(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &listOutput{
		Body: MessageListResponse{
			Success:  true,
			Count:    len(inbox.Messages),
			Messages: inbox.Messages,
			NonLus:   inbox.NonLus,
		},
	}, nil
}

func (h *Handler) mark(ctx context.Context, input *markInput) (*messageOutput, error) {
	lu := true
	if input.Body != nil && input.Body.Lu != nil {
		lu = *input.Body.Lu
	}

	m, err := h.service.MarkRead(ctx, input.ID, lu)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &messageOutput{Body: MessageResponse{Success: true, Data: m}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &deleteOutput{
		Body: MessageDeleteResponse{Success: true, Message: "Message deleted successfully"},
	}, nil
}
