package domain

import (
	"errors"
)

const (
	RoleUser = "user"

	// DateTimeLayout is the serialized form of every stored date returned to clients.
	DateTimeLayout = "2006-01-02T15:04:05.000Z"
	DateLayout     = "2006-01-02"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID      = errors.New("failed to parse UUID")
	ErrUserNotAllowed = errors.New("user not allowed")
	ErrTokenNotFound  = errors.New("failed to token not found")
	ErrTokenInvalid   = errors.New("token invalid")
	ErrTokenExpired   = errors.New("token expired")
)
