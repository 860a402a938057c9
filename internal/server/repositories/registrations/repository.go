// Package registrations provides the repository for pending verification
// pairs (one-time code + stable register token).
package registrations

import (
	"context"

	"github.com/henkenclub/account/internal/server/models"
)

// Repository is the persistent store for registration rows.
//
// Upsert is keyed by the owning temporary user: re-running signup for the
// same pending email replaces the previous pair wholesale (token, code and
// expiry), so at most one live registration exists per pending user — and,
// since tokens are unique, at most one per token. FindByToken and RotateCode
// return common.ErrorNotFound when no row matches.
type Repository interface {
	Upsert(ctx context.Context, reg *models.Registration) (*models.Registration, error)
	FindByToken(ctx context.Context, token string) (*models.Registration, error)
	RotateCode(ctx context.Context, token, code string) (*models.Registration, error)
	DeleteByToken(ctx context.Context, token string) error
}
