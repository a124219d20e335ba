package user

import (
	"time"

	"starauto/internal/docstore"
)

const (
	RoleAdmin  = docstore.RoleAdmin
	RoleClient = docstore.RoleClient
)

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"` // хэш
	Nom       string    `json:"nom"`
	Telephone string    `json:"telephone"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	Nom       string
	Telephone string
}

// ProfileUpdate is what a user may change about themselves.
type ProfileUpdate struct {
	Nom       *string
	Telephone *string
	Address   *string
}

// AdminUpdate is what an administrator may change about any account.
type AdminUpdate struct {
	Username  *string
	Email     *string
	Telephone *string
	Role      *string
}
