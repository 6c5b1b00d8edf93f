package domain

import "errors"

var (
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid username/email or password")
	ErrUserInactive          = errors.New("account is deactivated")
	ErrUnauthorized          = errors.New("unauthorized action")
	ErrInvalidGoogleToken    = errors.New("invalid google token")
	ErrInvalidRole           = errors.New("invalid role")
)
