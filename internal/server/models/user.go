// Package models holds the server domain types shared by repositories,
// services and transport.
package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Actor identifies the authenticated user a request acts for.
type Actor struct {
	UserID int64
}

type RegisterInput struct {
	Username        string `json:"username" validate:"required,min=3,max=80"`
	Email           string `json:"email" validate:"required,max=120,email"`
	Password        string `json:"password" validate:"required,min=4"`
	ConfirmPassword string `json:"confirm_password" validate:"omitempty,eqfield=Password"`
}

// Normalize trims the identity fields and lower-cases the email.
// Passwords are kept as typed.
func (in *RegisterInput) Normalize() {
	in.Username = trim(in.Username)
	in.Email = normalizeEmail(in.Email)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (in *LoginInput) Normalize() {
	in.Email = normalizeEmail(in.Email)
}

type UpdateUsernameInput struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
}

func (in *UpdateUsernameInput) Normalize() {
	in.Username = trim(in.Username)
}
