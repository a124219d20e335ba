package user

import (
	"time"

	"starauto/internal/domain/user"
)

// UserView is a user without the password hash.
type UserView struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Nom       string    `json:"nom,omitempty"`
	Telephone string    `json:"telephone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toView(u user.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Nom:       u.Nom,
		Telephone: u.Telephone,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toViews(users []user.User) []UserView {
	out := make([]UserView, 0, len(users))
	for _, u := range users {
		out = append(out, toView(u))
	}
	return out
}

type registerInput struct {
	Body struct {
		Username  string `json:"username" minLength:"1"`
		Email     string `json:"email" minLength:"3"`
		Password  string `json:"password" minLength:"1"`
		Nom       string `json:"nom,omitempty"`
		Telephone string `json:"telephone,omitempty"`
	}
}

type loginInput struct {
	Body struct {
		Email    string `json:"email" minLength:"1"`
		Password string `json:"password" minLength:"1"`
	}
}

type authOutput struct {
	Body AuthResponse
}

type AuthResponse struct {
	Success bool     `json:"success"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

type meInput struct{}

type userOutput struct {
	Body UserResponse
}

type UserResponse struct {
	Success bool     `json:"success"`
	User    UserView `json:"user"`
}

type listInput struct{}

type listOutput struct {
	Body UserListResponse
}

type UserListResponse struct {
	Success bool       `json:"success"`
	Count   int        `json:"count"`
	Users   []UserView `json:"users"`
}

type countInput struct{}

type countOutput struct {
	Body UserCountResponse
}

type UserCountResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

type profileInput struct {
	Body struct {
		Nom       *string `json:"nom,omitempty"`
		Telephone *string `json:"telephone,omitempty"`
		Address   *string `json:"address,omitempty"`
	}
}

type adminUpdateInput struct {
	ID   string `path:"id"`
	Body struct {
		Username  *string `json:"username,omitempty"`
		Email     *string `json:"email,omitempty"`
		Telephone *string `json:"telephone,omitempty"`
		Role      *string `json:"role,omitempty" enum:"ADMIN,CLIENT"`
	}
}

type deleteInput struct {
	ID string `path:"id"`
}

type deleteOutput struct {
	Body UserDeleteResponse
}

type UserDeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
