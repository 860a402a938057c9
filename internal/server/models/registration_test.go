package models

import (
	"testing"
	"time"
)

func TestRegistration_Status(t *testing.T) {
	t.Parallel()

	expiry := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	reg := &Registration{Token: "tok", Code: "code", ExpiredAt: expiry}

	tests := []struct {
		name string
		now  time.Time
		want RegistrationStatus
	}{
		{name: "well before expiry", now: expiry.Add(-time.Hour), want: RegistrationPending},
		{name: "exactly at expiry", now: expiry, want: RegistrationPending},
		{name: "just after expiry", now: expiry.Add(time.Nanosecond), want: RegistrationExpired},
		{name: "long after expiry", now: expiry.Add(24 * time.Hour), want: RegistrationExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := reg.Status(tt.now); got != tt.want {
				t.Fatalf("Status(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}
