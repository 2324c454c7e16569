package api

import (
	"errors"
	"fmt"

	"github.com/mbelyaev/eventmap-client/internal/common"
)

var (
	ErrUnavailable = errors.New("server unavailable")
)

// AuthError is a structured error payload returned by the authentication
// service. Message may be empty when the payload did not carry a displayable
// string; callers should fall back to a generic message in that case.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("authentication failed (status %d)", e.StatusCode)
	}
	return e.Message
}

// Unwrap lets errors.Is(err, common.ErrorUnauthorized) match credential
// rejections.
func (e *AuthError) Unwrap() error {
	if e.StatusCode == 401 || e.StatusCode == 403 {
		return common.ErrorUnauthorized
	}
	return nil
}
