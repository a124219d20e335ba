package app

import (
	"time"

	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
	"starauto/internal/domain/car"
	"starauto/internal/domain/favorite"
	"starauto/internal/domain/message"
	"starauto/internal/domain/session"
	"starauto/internal/domain/user"
	"starauto/internal/infrastructure/storage/document"
)

// Services are the domain services over one document store factory. The
// server and the ctl tool share them.
type Services struct {
	Cars      *car.Service
	Messages  *message.Service
	Favorites *favorite.Service
	Users     *user.Service
	Sessions  *session.Service
}

func NewServices(factory *docstore.Factory, secret string, ttl time.Duration, log *slog.Logger) *Services {
	cars := car.NewService(
		document.NewCarRepository(factory.MustModel(docstore.Cars), log), log)
	messages := message.NewService(
		document.NewMessageRepository(factory.MustModel(docstore.Messages), log), log)
	favorites := favorite.NewService(
		document.NewFavoriteRepository(factory.MustModel(docstore.Favorites), log), cars, log)
	users := user.NewService(
		document.NewUserRepository(factory.MustModel(docstore.Users), log),
		user.NewAccountValidator(), favorites, log)

	return &Services{
		Cars:      cars,
		Messages:  messages,
		Favorites: favorites,
		Users:     users,
		Sessions:  session.NewService(secret, ttl, log),
	}
}
