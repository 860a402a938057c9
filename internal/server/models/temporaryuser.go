package models

import "time"

// TemporaryUser is a pending registration. There is at most one per email:
// re-submitting signup with the same email overwrites alias, password digest
// and display name instead of creating a second row. On promotion its fields
// are copied verbatim (including ID) into a permanent User.
type TemporaryUser struct {
	ID             string
	Email          string
	Alias          string
	PasswordDigest string
	DisplayName    string
	CreatedAt      time.Time
}
