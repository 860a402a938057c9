// Package models defines the persisted entities of the account service.
package models

import "time"

// User is a permanent account. Email and Alias are unique; the store
// enforces both constraints. ID is immutable once the row exists.
type User struct {
	ID             string
	Email          string
	Alias          string
	PasswordDigest string
	DisplayName    string
	CreatedAt      time.Time
}
