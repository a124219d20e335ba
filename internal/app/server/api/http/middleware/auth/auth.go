package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"starauto/internal/domain/session"
)

type Auth struct {
	session session.Servicer
	log     *slog.Logger
}

func New(session session.Servicer, log *slog.Logger) *Auth {
	return &Auth{
		session: session,
		log:     log.With("component", "auth_middleware"),
	}
}

type contextKey string

const IdentityKey contextKey = "identity"

// Middleware возвращает middleware для Huma с сигнатурой func(ctx Context, next func(Context))
func (a *Auth) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			a.log.Debug("missing bearer token", slog.String("path", ctx.URL().Path))
			a.deny(ctx, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		// Валидируем токен
		id, err := a.session.Validate(ctx.Context(), token)
		if err != nil {
			a.log.Debug("token rejected", slog.String("error", err.Error()))
			a.deny(ctx, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		next(huma.WithContext(ctx, WithIdentity(ctx.Context(), id)))
	}
}

// RequireRole lets through only identities with one of roles. It must run
// after Middleware.
func (a *Auth) RequireRole(roles ...string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id, ok := GetIdentity(ctx.Context())
		if !ok {
			a.deny(ctx, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}
		for _, r := range roles {
			if id.Role == r {
				next(ctx)
				return
			}
		}
		a.deny(ctx, http.StatusForbidden, "User role "+id.Role+" is not authorized to access this route")
	}
}

func (a *Auth) deny(ctx huma.Context, status int, msg string) {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.SetStatus(status)
	err := json.NewEncoder(ctx.BodyWriter()).Encode(map[string]any{
		"success": false,
		"message": msg,
	})
	if err != nil {
		a.log.Error("write auth error", slog.String("error", err.Error()))
	}
}

func WithIdentity(ctx context.Context, id session.Identity) context.Context {
	return context.WithValue(ctx, IdentityKey, id)
}

func GetIdentity(ctx context.Context) (session.Identity, bool) {
	id, ok := ctx.Value(IdentityKey).(session.Identity)
	return id, ok
}

func GetUserID(ctx context.Context) (string, bool) {
	id, ok := GetIdentity(ctx)
	return id.UserID, ok && id.UserID != ""
}
