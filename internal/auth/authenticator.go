// Package auth issues session tokens and checks user credentials.
package auth

import (
	"context"

	"github.com/mmynk/defter/internal/models"
)

// Authenticator registers accounts and verifies credentials.
// PasswordAuthenticator is the only implementation; the interface keeps the
// RPC layer independent of how credentials are checked.
type Authenticator interface {
	// Register creates an account. It returns ErrEmailExists for a taken
	// email and ErrWeakPassword when ValidateCredential rejects credential.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the account matching email and credential, or
	// ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	ValidateCredential(credential string) error
}

var _ Authenticator = (*PasswordAuthenticator)(nil)
