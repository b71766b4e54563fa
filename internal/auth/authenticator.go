// Package auth is the identity provider in front of the ledger. It turns an
// email and credential into a models.User, and a session token into the
// models.Identity that every ledger operation is checked against.
package auth

import (
	"context"

	"github.com/Denniskaninu/chama-smart-sync/internal/models"
)

// Authenticator is a pluggable identity provider. Whatever backs it, the
// only thing the rest of the system keeps from a sign-in is the user's
// stable ID and display profile; credentials stop here.
type Authenticator interface {
	// Register creates an account. It fails with ErrEmailExists,
	// ErrInvalidEmail or the provider's credential error.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate signs a user in. Unknown emails and wrong credentials
	// both yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ValidateCredential reports whether credential is acceptable to this
	// provider before an account is created with it.
	ValidateCredential(credential string) error
}
