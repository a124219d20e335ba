package user

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
)

// FavoritesCleaner drops favorites owned by a deleted account.
type FavoritesCleaner interface {
	ForgetUser(ctx context.Context, userID string) error
}

type Servicer interface {
	Register(ctx context.Context, in RegisterInput) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	Get(ctx context.Context, id string) (User, error)
	List(ctx context.Context) ([]User, error)
	CountClients(ctx context.Context) (int, error)
	UpdateProfile(ctx context.Context, id string, p ProfileUpdate) (User, error)
	AdminUpdate(ctx context.Context, id string, u AdminUpdate) (User, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo      Repository
	validator Validator
	favorites FavoritesCleaner
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, favorites FavoritesCleaner, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		favorites: favorites,
		log:       log.With("component", "user_service"),
	}
}

// Register creates a client account.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := s.validator.ValidateRegister(in.Username, in.Email, in.Password); err != nil {
		s.log.Debug("validation failed", "username", in.Username, "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.create(ctx, in, RoleClient)
}

// Provision creates an account with the given role without checking password
// strength. It backs operator tooling such as seeding.
func (s *Service) Provision(ctx context.Context, in RegisterInput, role string) (User, error) {
	in.Email = normalizeEmail(in.Email)
	if err := s.validator.ValidateEmail(in.Email); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if in.Password == "" {
		return User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	if !validRole(role) {
		return User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}
	return s.create(ctx, in, role)
}

func (s *Service) create(ctx context.Context, in RegisterInput, role string) (User, error) {
	existing, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return User{}, fmt.Errorf("find user: %w", err)
	}
	if existing != nil {
		return User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("Хэш пароля: %w", err)
	}

	u, err := s.repo.Create(ctx, map[string]any{
		"username":  in.Username,
		"email":     in.Email,
		"password":  string(hash),
		"nom":       in.Nom,
		"telephone": in.Telephone,
		"address":   "",
		"role":      role,
	})
	if err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	s.log.Info("user created", "id", u.ID, "role", u.Role)
	return u, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	email = normalizeEmail(email)
	if err := s.validator.ValidateEmail(email); err != nil {
		return User{}, ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return User{}, fmt.Errorf("find user: %w", err)
	}
	if u == nil {
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return *u, nil
}

func (s *Service) Get(ctx context.Context, id string) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, fmt.Errorf("get user: %w", err)
	}
	if u == nil {
		return User{}, ErrNotFound
	}
	return *u, nil
}

// List returns every account, newest first.
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

// CountClients counts non-admin accounts through the legacy "USER" role
// spelling, which the store resolves to CLIENT.
func (s *Service) CountClients(ctx context.Context) (int, error) {
	n, err := s.repo.CountByRole(ctx, docstore.RoleUser)
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id string, p ProfileUpdate) (User, error) {
	fields := map[string]any{}
	if p.Nom != nil {
		fields["nom"] = strings.TrimSpace(*p.Nom)
	}
	if p.Telephone != nil {
		fields["telephone"] = strings.TrimSpace(*p.Telephone)
	}
	if p.Address != nil {
		fields["address"] = strings.TrimSpace(*p.Address)
	}
	return s.update(ctx, id, fields)
}

func (s *Service) AdminUpdate(ctx context.Context, id string, u AdminUpdate) (User, error) {
	fields := map[string]any{}
	if u.Username != nil {
		if err := s.validator.ValidateUsername(*u.Username); err != nil {
			return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		fields["username"] = *u.Username
	}
	if u.Email != nil {
		email := normalizeEmail(*u.Email)
		if err := s.validator.ValidateEmail(email); err != nil {
			return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		other, err := s.repo.FindByEmail(ctx, email)
		if err != nil {
			return User{}, fmt.Errorf("find user: %w", err)
		}
		if other != nil && other.ID != id {
			return User{}, ErrEmailTaken
		}
		fields["email"] = email
	}
	if u.Telephone != nil {
		fields["telephone"] = strings.TrimSpace(*u.Telephone)
	}
	if u.Role != nil {
		if !validRole(*u.Role) {
			return User{}, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, *u.Role)
		}
		fields["role"] = *u.Role
	}
	return s.update(ctx, id, fields)
}

func (s *Service) update(ctx context.Context, id string, fields map[string]any) (User, error) {
	u, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		return User{}, fmt.Errorf("update user: %w", err)
	}
	if u == nil {
		return User{}, ErrNotFound
	}
	return *u, nil
}

// Delete removes the account and its favorites.
func (s *Service) Delete(ctx context.Context, id string) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if !ok {
		return ErrNotFound
	}

	if s.favorites != nil {
		if err := s.favorites.ForgetUser(ctx, id); err != nil {
			s.log.Error("user deleted but favorites kept", "id", id, "error", err)
		}
	}
	s.log.Info("user deleted", "id", id)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validRole(role string) bool {
	return slices.Contains([]string{RoleAdmin, RoleClient}, role)
}
