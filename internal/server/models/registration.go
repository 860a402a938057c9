package models

import "time"

// RegistrationStatus is derived from a registration row and a point in time.
// There is no persisted state column: a row either still accepts its
// verification code or it has expired.
type RegistrationStatus int

const (
	RegistrationPending RegistrationStatus = iota
	RegistrationExpired
)

// Registration pairs a one-time verification code with a stable register
// token, anchored to a temporary user. The code rotates on resend; the token
// does not. ExpiredAt is absolute wall-clock time fixed at creation.
type Registration struct {
	Token     string
	Code      string
	ExpiredAt time.Time
	UserID    string
	CreatedAt time.Time
}

// Status reports the registration's state at the given instant. Keeping the
// comparison here, rather than at call sites, gives every flow the same
// expiry semantics.
func (r *Registration) Status(now time.Time) RegistrationStatus {
	if now.After(r.ExpiredAt) {
		return RegistrationExpired
	}
	return RegistrationPending
}
