package reservation

import "time"

// ExpiryPolicy decides the expiry date stamped on a certificate at issuance.
// The policy is pluggable so the fixed campaign date can later be replaced by
// a relative one (e.g. twelve months from purchase) without touching callers.
type ExpiryPolicy interface {
	// ExpiryDate returns the display expiry date for a certificate issued at
	// the given time.
	ExpiryDate(issuedAt time.Time) string
}

// fixedDatePolicy stamps every certificate with the same calendar date.
type fixedDatePolicy struct {
	date string
}

// NewFixedDatePolicy creates a policy that always returns the given date.
func NewFixedDatePolicy(date string) ExpiryPolicy {
	return &fixedDatePolicy{date: date}
}

// ExpiryDate returns the configured date regardless of issuance time.
func (p *fixedDatePolicy) ExpiryDate(time.Time) string {
	return p.date
}
