package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkravets/theater-tickets/internal/validate"
)

// Roles stored in users.role and carried in the JWT "role" claim.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is the authentication identity. Every user owns exactly one
// Client; registration creates both inside one transaction. The
// password is stored only as a bcrypt hash.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate checks the registration-relevant fields. Names and email
// are optional profile data.
func (u User) Validate() error {
	if err := validate.Required("username", u.Username); err != nil {
		return err
	}
	if u.Role != RoleUser && u.Role != RoleAdmin {
		return &validate.Error{Field: "role", Reason: "must be USER or ADMIN", Value: u.Role}
	}
	return nil
}
