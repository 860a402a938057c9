// Package tempusers provides the repository for pending registrations'
// temporary users.
package tempusers

import (
	"context"

	"github.com/henkenclub/account/internal/server/models"
)

// Repository is the persistent store for temporary users.
//
// Upsert is keyed by email: a second signup for the same address overwrites
// alias, password digest and display name instead of adding a row. FindByID
// returns common.ErrorNotFound for missing rows. Delete removes the row
// after promotion; deleting an absent id is not an error.
type Repository interface {
	Upsert(ctx context.Context, user *models.TemporaryUser) (*models.TemporaryUser, error)
	FindByID(ctx context.Context, id string) (*models.TemporaryUser, error)
	Delete(ctx context.Context, id string) error
}
