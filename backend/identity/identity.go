// Package identity defines the external identity collaborator the session
// layer authenticates against.
package identity

import (
	"context"

	"edubridge/backend/models"
)

// AuthError reports rejected credentials, as opposed to transport or
// cancellation failures.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string {
	return "identity: " + e.Reason
}

// Service is the round trip to the identity provider. Both calls block for
// the duration of the round trip and honor ctx cancellation; a cancelled call
// returns ctx.Err() and must leave no trace.
type Service interface {
	Authenticate(ctx context.Context, email, password string, role models.Role) error
	Register(ctx context.Context, name, email, password string, role models.Role) error
}
