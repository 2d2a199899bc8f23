package domain

import (
	"errors"
	"time"
)

// User models a registered account. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	Confirmed    bool      `json:"confirmed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrUserNotFound = errors.New("user not found")
var ErrAccountExists = errors.New("account already exists")

// ErrIncorrectLogin covers both "no such user" and "wrong password" so the
// login response cannot be used to enumerate registered emails.
var ErrIncorrectLogin = errors.New("incorrect email or password")
var ErrNotConfirmed = errors.New("email not confirmed")

// ErrInvalidToken is the single error kind for every token decode failure:
// bad signature, malformed structure, expiry in the past, or scope mismatch.
var ErrInvalidToken = errors.New("invalid token")
var ErrInvalidCredentials = errors.New("could not validate credentials")

var ErrVerification = errors.New("email verification failed")
var ErrAlreadyConfirmed = errors.New("email already confirmed")
