// Package identity holds the demo identity verifier: a phone + one-time code exchange that
// accepts a single fixed code. It stands in for a real SMS provider and issues opaque demo
// tokens; nothing in the dispatch core depends on how verification works.
package identity

import (
	"context"
	"errors"
	"strings"

	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

const (
	// DefaultCode is the code every phone number verifies with.
	DefaultCode = "123456"

	// TokenPrefix is prepended to the phone number to form a token.
	TokenPrefix = "demo-token-"

	// RoleCustomer is the role assigned when none is requested.
	RoleCustomer = "customer"
	// RoleDriver is the role drivers sign in with.
	RoleDriver = "driver"
)

// ErrInvalidCode is returned by Verify when the code does not match.
var ErrInvalidCode = ports.ErrInvalidCode

var _ ports.IdentityVerifier = (*StaticOTPVerifier)(nil)

// StaticOTPVerifier verifies every phone number against one fixed code.
type StaticOTPVerifier struct {
	code string
}

// NewStaticOTPVerifier creates a verifier accepting code; an empty code means DefaultCode.
func NewStaticOTPVerifier(code string) *StaticOTPVerifier {
	if code == "" {
		code = DefaultCode
	}
	return &StaticOTPVerifier{code: code}
}

// RequestCode returns the code itself as the hint, since no message is actually sent.
func (v *StaticOTPVerifier) RequestCode(_ context.Context, phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", errs.NewValueIsRequiredError("phone")
	}
	return v.code, nil
}

// Verify checks code and returns the identity. The display name defaults to "User" and the
// last four digits of the phone; the role defaults to customer.
func (v *StaticOTPVerifier) Verify(_ context.Context, phone, code, name, role string) (ports.Identity, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" || code == "" {
		return ports.Identity{}, errors.Join(
			requiredIfEmpty("phone", phone),
			requiredIfEmpty("code", code),
		)
	}
	if code != v.code {
		return ports.Identity{}, ErrInvalidCode
	}

	if name == "" {
		name = "User " + lastDigits(phone, 4)
	}
	if role == "" {
		role = RoleCustomer
	}

	return ports.Identity{
		Phone: phone,
		Name:  name,
		Role:  role,
		Token: TokenPrefix + phone,
	}, nil
}

func requiredIfEmpty(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

func lastDigits(phone string, n int) string {
	if len(phone) <= n {
		return phone
	}
	return phone[len(phone)-n:]
}
