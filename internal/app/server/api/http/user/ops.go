package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var bearer = []map[string][]string{{"bearer": {}}}

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-register",
		Method:        http.MethodPost,
		Path:          "/api/auth/register",
		Summary:       "Регистрация пользователя",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.mw.Public,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/api/auth/login",
		Summary:     "Авторизация пользователя",
		Tags:        []string{"auth"},
		Middlewares: h.mw.Public,
	}
}

func (h *Handler) meOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-me",
		Method:      http.MethodGet,
		Path:        "/api/auth/me",
		Summary:     "Текущий пользователь",
		Tags:        []string{"auth"},
		Security:    bearer,
		Middlewares: h.mw.User,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-list",
		Method:      http.MethodGet,
		Path:        "/api/users",
		Summary:     "List all users, newest first",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}

func (h *Handler) countOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-count",
		Method:      http.MethodGet,
		Path:        "/api/users/count",
		Summary:     "Count client accounts",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}

func (h *Handler) profileOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-profile",
		Method:      http.MethodPut,
		Path:        "/api/users/profile",
		Summary:     "Update own profile",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.mw.User,
	}
}

func (h *Handler) adminUpdateOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-update",
		Method:      http.MethodPut,
		Path:        "/api/users/{id}",
		Summary:     "Update a user",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-delete",
		Method:      http.MethodDelete,
		Path:        "/api/users/{id}",
		Summary:     "Delete a user and their favorites",
		Tags:        []string{"users"},
		Security:    bearer,
		Middlewares: h.mw.Admin,
	}
}
