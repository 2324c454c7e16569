package api

import (
	"context"

	"github.com/mbelyaev/eventmap-client/internal/client/models"
)

// Client is the transport-agnostic contract to the remote authentication
// service. Implementations must honor context cancellation/timeouts.
type Client interface {
	Close() error
	// Authenticate exchanges credentials for the identity record and an
	// access token. Failures are either a *AuthError (the service answered
	// with an error payload) or a sentinel such as ErrUnavailable.
	Authenticate(ctx context.Context, email string, password string) (*models.User, string, error)
	Ping(ctx context.Context) error
}
