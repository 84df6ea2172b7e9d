package domain

import (
	"errors"
	"os"
)

const (
	RoleUser = "user"
)

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedBodyRequest    = "failed to parse body request"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	JwtSecret = os.Getenv("JWT_SECRET")

	ErrUserNotAllowed  = errors.New("user not allowed")
	ErrUnauthenticated = errors.New("user authentication required")
	ErrTokenNotFound   = errors.New("failed to token not found")
	ErrInternalServer  = errors.New("internal server error")
)
