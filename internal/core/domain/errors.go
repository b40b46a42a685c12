package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrUsernameTaken      = errors.New("user with username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal server error")
)
