// Package apierr maps domain errors onto HTTP problem responses.
package apierr

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
	"starauto/internal/domain/car"
	"starauto/internal/domain/favorite"
	"starauto/internal/domain/message"
	"starauto/internal/domain/session"
	"starauto/internal/domain/user"
)

// From converts err into a huma status error. Unknown errors are logged and
// reported as 500 without leaking their text.
func From(log *slog.Logger, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, car.ErrNotFound),
		errors.Is(err, message.ErrNotFound),
		errors.Is(err, user.ErrNotFound),
		errors.Is(err, favorite.ErrCarNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, user.ErrEmailTaken),
		errors.Is(err, docstore.ErrConflict):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, car.ErrInvalidInput),
		errors.Is(err, message.ErrInvalidInput),
		errors.Is(err, user.ErrInvalidInput),
		errors.Is(err, favorite.ErrAlreadyFavorite),
		errors.Is(err, favorite.ErrNotFavorite):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, user.ErrInvalidCredentials),
		errors.Is(err, session.ErrInvalidToken):
		return huma.Error401Unauthorized(err.Error())
	}

	if log != nil {
		log.Error("request failed", slog.String("error", err.Error()))
	}
	return huma.Error500InternalServerError("Server Error")
}
