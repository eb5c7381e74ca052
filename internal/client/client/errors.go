package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("user not found")
	ErrConflict     = errors.New("email already registered")

	// ErrSessionExpired means the stored token was refused and has been
	// dropped from the client.
	ErrSessionExpired = fmt.Errorf("%w: session expired, log in again", ErrUnauthorized)
)
