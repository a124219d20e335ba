package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"
)

var ErrInvalidToken = errors.New("invalid session")

// Identity is who a token was issued to.
type Identity struct {
	UserID string
	Role   string
}

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Servicer interface {
	Create(ctx context.Context, id Identity) (string, error)
	Validate(ctx context.Context, token string) (Identity, error)
}

// Service issues stateless HS256 tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger
}

func NewService(secret string, ttl time.Duration, log *slog.Logger) *Service {
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		log:    log.With("component", "session"),
	}
}

func (s *Service) Create(_ context.Context, id Identity) (string, error) {
	if id.UserID == "" {
		return "", fmt.Errorf("create session: empty user id")
	}

	now := s.now()
	claims := Claims{
		Role: id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *Service) Validate(_ context.Context, token string) (Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		s.log.Debug("token rejected", "error", err)
		return Identity{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: claims.Subject, Role: claims.Role}, nil
}
