package document

import (
	"context"

	"golang.org/x/exp/slog"

	"starauto/internal/docstore"
	"starauto/internal/domain/user"
)

type UserRepository struct {
	users docstore.Collection
	log   *slog.Logger
}

func NewUserRepository(users docstore.Collection, log *slog.Logger) *UserRepository {
	return &UserRepository{
		users: users,
		log:   log,
	}
}

func (r *UserRepository) Create(ctx context.Context, fields map[string]any) (user.User, error) {
	return decodeNew[user.User](r.users.Create(ctx, fields))
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	return decodeOne[user.User](r.users.FindByID(ctx, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return decodeOne[user.User](r.users.FindOne(ctx, docstore.Filter{docstore.Eq("email", email)}))
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	recs, err := r.users.Find(ctx, nil)
	if err != nil {
		return nil, err
	}
	return docstore.DecodeAll[user.User](recs)
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int, error) {
	return r.users.Count(ctx, docstore.Filter{docstore.ByRole(role)})
}

func (r *UserRepository) Update(ctx context.Context, id string, fields map[string]any) (*user.User, error) {
	return decodeOne[user.User](r.users.UpdateByID(ctx, id, fields, returnUpdated))
}

func (r *UserRepository) Delete(ctx context.Context, id string) (bool, error) {
	rec, err := r.users.DeleteByID(ctx, id)
	return rec != nil, err
}
