package user

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"starauto/internal/app/server/api/http/apierr"
	"starauto/internal/app/server/api/http/middleware"
	"starauto/internal/app/server/api/http/middleware/auth"
	"starauto/internal/domain/session"
	"starauto/internal/domain/user"
)

type Handler struct {
	service user.Servicer
	session session.Servicer
	log     *slog.Logger
	mw      middleware.Chains
}

func NewHandler(service user.Servicer, session session.Servicer, log *slog.Logger, mw middleware.Chains) *Handler {
	return &Handler{
		service: service,
		session: session,
		log:     log,
		mw:      mw,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.meOp(), h.me)
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.countOp(), h.count)
	huma.Register(api, h.profileOp(), h.updateProfile)
	huma.Register(api, h.adminUpdateOp(), h.adminUpdate)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*authOutput, error) {
	u, err := h.service.Register(ctx, user.RegisterInput{
		Username:  input.Body.Username,
		Email:     input.Body.Email,
		Password:  input.Body.Password,
		Nom:       input.Body.Nom,
		Telephone: input.Body.Telephone,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return h.issue(ctx, u)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*authOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return h.issue(ctx, u)
}

func (h *Handler) issue(ctx context.Context, u user.User) (*authOutput, error) {
	token, err := h.session.Create(ctx, session.Identity{UserID: u.ID, Role: u.Role})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &authOutput{
		Body: AuthResponse{Success: true, Token: token, User: toView(u)},
	}, nil
}

func (h *Handler) me(ctx context.Context, _ *meInput) (*userOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.Get(ctx, userID)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &userOutput{Body: UserResponse{Success: true, User: toView(u)}}, nil
}

func (h *Handler) list(ctx context.Context, _ *listInput) (*listOutput, error) {
	users, err := h.service.List(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	views := toViews(users)
	return &listOutput{
		Body: UserListResponse{Success: true, Count: len(views), Users: views},
	}, nil
}

func (h *Handler) count(ctx context.Context, _ *countInput) (*countOutput, error) {
	n, err := h.service.CountClients(ctx)
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &countOutput{Body: UserCountResponse{Success: true, Count: n}}, nil
}

func (h *Handler) updateProfile(ctx context.Context, input *profileInput) (*userOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.UpdateProfile(ctx, userID, user.ProfileUpdate{
		Nom:       input.Body.Nom,
		Telephone: input.Body.Telephone,
		Address:   input.Body.Address,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &userOutput{Body: UserResponse{Success: true, User: toView(u)}}, nil
}

func (h *Handler) adminUpdate(ctx context.Context, input *adminUpdateInput) (*userOutput, error) {
	u, err := h.service.AdminUpdate(ctx, input.ID, user.AdminUpdate{
		Username:  input.Body.Username,
		Email:     input.Body.Email,
		Telephone: input.Body.Telephone,
		Role:      input.Body.Role,
	})
	if err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &userOutput{Body: UserResponse{Success: true, User: toView(u)}}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, apierr.From(h.log, err)
	}
	return &deleteOutput{
		Body: UserDeleteResponse{Success: true, Message: "User deleted"},
	}, nil
}
