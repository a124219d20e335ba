package document

import (
	"context"

	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
	"starauto/internal/domain/message"
)

type MessageRepository struct {
	messages docstore.Collection
	log      *slog.Logger
}

func NewMessageRepository(messages docstore.Collection, log *slog.Logger) *MessageRepository {
	return &MessageRepository{
		messages: messages,
		log:      log,
	}
}

func (r *MessageRepository) Create(ctx context.Context, fields map[string]any) (message.Message, error) {
	return decodeNew[message.Message](r.messages.Create(ctx, fields))
}

func (r *MessageRepository) List(ctx context.Context) ([]message.Message, error) {
	recs, err := r.messages.Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	return docstore.DecodeAll[message.Message](recs)
}

func (r *MessageRepository) SetRead(ctx context.Context, id string, lu bool) (*message.Message, error) {
	return decodeOne[message.Message](r.messages.UpdateByID(ctx, id, docstore.Patch{"lu": lu}, returnUpdated))
}

func (r *MessageRepository) Delete(ctx context.Context, id string) (bool, error) {
	rec, err := r.messages.DeleteByID(ctx, id)
	return rec != nil, err
}

func (r *MessageRepository) CountUnread(ctx context.Context) (int, error) {
	return r.messages.Count(ctx, docstore.Filter{docstore.Eq("lu", false)})
}

func (r *MessageRepository) Count(ctx context.Context) (int, error) {
	return r.messages.Count(ctx, nil)
}
