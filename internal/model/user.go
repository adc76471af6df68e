package model

import (
	"errors"
	"strings"
	"time"
)

// User represents a registered member.
type User struct {
	ID             int64     `db:"id"`
	Username       string    `db:"username"`
	PasswordHashed string    `db:"password_hashed"`
	CreatedAt      time.Time `db:"created_at"`
}

// RegisterForm carries the sign-up fields as submitted.
type RegisterForm struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// LoginForm carries the login fields as submitted.
type LoginForm struct {
	Username string
	Password string
}

// NormalizeUsername applies the canonical form used everywhere a username is
// written or looked up: trimmed and lowercased. Uniqueness in the users table
// is enforced on this form.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

var (
	// ErrUserNotFound is returned when a user cannot be found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken is returned when attempting to register a taken username
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials is returned when login credentials are incorrect.
	// Unknown username and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
