package booking

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ServiceTier is the categorical delivery mode a customer picks. It only affects
// presentation and pricing outside this service; dispatch treats all tiers alike.
type ServiceTier string

const (
	Standard ServiceTier = "standard"
	Express  ServiceTier = "express"
	Tuktuk   ServiceTier = "tuktuk"

	// DefaultServiceTier is used when a booking request names no tier.
	DefaultServiceTier = Express
)

// ParseServiceTier returns DefaultServiceTier for an empty value and rejects unknown tiers.
func ParseServiceTier(raw string) (ServiceTier, error) {
	if raw == "" {
		return DefaultServiceTier, nil
	}

	tier := ServiceTier(raw)
	if err := tier.Validate(); err != nil {
		return "", err
	}
	return tier, nil
}

// Validate rejects tiers outside standard, express and tuktuk.
func (t ServiceTier) Validate() error {
	switch t {
	case Standard, Express, Tuktuk:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("service", fmt.Errorf("%q is not a known service tier", string(t)))
	}
}

func (t ServiceTier) String() string {
	return string(t)
}
