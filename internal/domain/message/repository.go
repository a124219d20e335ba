package message

import "context"

type Repository interface {
	Create(ctx context.Context, fields map[string]any) (Message, error)
	List(ctx context.Context) ([]Message, error)
	SetRead(ctx context.Context, id string, lu bool) (*Message, error)
	Delete(ctx context.Context, id string) (bool, error)
	CountUnread(ctx context.Context) (int, error)
	Count(ctx context.Context) (int, error)
}
