package message

import (
	"context"
	"fmt"
	"net/mail"
	"sort"
	"strings"

	"golang.org/x/exp/slog"
)

type Servicer interface {
	Create(ctx context.Context, in Input) (Message, error)
	Inbox(ctx context.Context) (Inbox, error)
	MarkRead(ctx context.Context, id string, lu bool) (Message, error)
	Delete(ctx context.Context, id string) error
	Counts(ctx context.Context) (total, unread int, err error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "message_service"),
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Message, error) {
	in.Nom = strings.TrimSpace(in.Nom)
	in.Email = strings.TrimSpace(in.Email)

	if in.Nom == "" {
		return Message{}, fmt.Errorf("%w: nom is required", ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return Message{}, fmt.Errorf("%w: email: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(in.Message) == "" {
		return Message{}, fmt.Errorf("%w: message is required", ErrInvalidInput)
	}

	var voiture any
	if in.Voiture != "" {
		voiture = in.Voiture
	}

	m, err := s.repo.Create(ctx, map[string]any{
		"nom":       in.Nom,
		"email":     in.Email,
		"sujet":     in.Sujet,
		"message":   in.Message,
		"telephone": in.Telephone,
		"voiture":   voiture,
		"lu":        false,
	})
	if err != nil {
		return Message{}, fmt.Errorf("create message: %w", err)
	}
	s.log.Info("message received", "id", m.ID, "email", m.Email)
	return m, nil
}

func (s *Service) Inbox(ctx context.Context) (Inbox, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return Inbox{}, fmt.Errorf("list messages: %w", err)
	}

	sort.SliceStable(msgs, func(i, j int) bool {
		return msgs[i].CreatedAt.After(msgs[j].CreatedAt)
	})

	inbox := Inbox{Messages: msgs}
	for _, m := range msgs {
		if !m.Lu {
			inbox.NonLus++
		}
	}
	return inbox, nil
}

// MarkRead persists the read flag and returns the updated message.
func (s *Service) MarkRead(ctx context.Context, id string, lu bool) (Message, error) {
	m, err := s.repo.SetRead(ctx, id, lu)
	if err != nil {
		return Message{}, fmt.Errorf("mark message: %w", err)
	}
	if m == nil {
		return Message{}, ErrNotFound
	}
	return *m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Counts(ctx context.Context) (total, unread int, err error) {
	if total, err = s.repo.Count(ctx); err != nil {
		return 0, 0, fmt.Errorf("count messages: %w", err)
	}
	if unread, err = s.repo.CountUnread(ctx); err != nil {
		return 0, 0, fmt.Errorf("count unread messages: %w", err)
	}
	return total, unread, nil
}
