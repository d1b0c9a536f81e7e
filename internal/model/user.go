package model

import (
	"errors"
	"time"
)

// Account roles, chosen once at registration.
const (
	RoleStudent = "student"
	RoleTrainer = "trainer"
)

// User represents an account in the directory. The full struct is what gets
// persisted in the users collection, so the password hash carries a JSON tag;
// it must never leave the service layer (use Summary for responses).
type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PasswordHashed string    `json:"password_hashed"`
	Role           string    `json:"role"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// UserSummary is the public view of a user.
type UserSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Role      string  `json:"role"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// Summary strips the fields that must not be exposed to callers.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Name:      u.Name,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
	}
}

// UsersDocument is the persisted shape of the users collection.
type UsersDocument struct {
	Users []User `json:"users"`
}

// RegisterRequest is the request body for creating an account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest is the request body for authenticating.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  UserSummary `json:"user"`
	Token string      `json:"token"`
}

// Token error codes for HTTP responses
const (
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("role must be student or trainer")
)
