package ports

import (
	"context"
	"errors"
)

// ErrInvalidCode is returned by Verify when the one-time code does not match.
var ErrInvalidCode = errors.New("invalid code")

// Identity is a verified user returned by an IdentityVerifier.
type Identity struct {
	Phone string
	Name  string
	Role  string
	Token string
}

// IdentityVerifier exchanges a phone number and a one-time code for an identity. It lives
// outside the dispatch core; the service only needs the contract.
type IdentityVerifier interface {
	// RequestCode starts verification for phone and returns a hint for test environments
	// (empty when codes are delivered out of band).
	RequestCode(ctx context.Context, phone string) (string, error)

	// Verify checks code for phone. name and role are optional profile fields.
	Verify(ctx context.Context, phone, code, name, role string) (Identity, error)
}
