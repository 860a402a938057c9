package registrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/henkenclub/account/internal/common"
	"github.com/henkenclub/account/internal/dbx"
	"github.com/henkenclub/account/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert stores the verification pair for reg.UserID. An existing row for
// the same temporary user is replaced: token, code and expiry all take the
// new values, which retires any previously issued pair for that user.
func (r *PostgresRepository) Upsert(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	query := `
		INSERT INTO registrations (token, code, expired_at, user_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			token = excluded.token,
			code = excluded.code,
			expired_at = excluded.expired_at
		RETURNING token, code, expired_at, user_id
	`

	stored := &models.Registration{}
	err := r.db.QueryRowContext(ctx, query,
		reg.Token, reg.Code, reg.ExpiredAt, reg.UserID).
		Scan(&stored.Token, &stored.Code, &stored.ExpiredAt, &stored.UserID)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			// token collision with another user's pair
			return nil, common.ErrorDuplicate
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return stored, nil
}

// FindByToken returns the registration row for the given register token.
func (r *PostgresRepository) FindByToken(ctx context.Context, token string) (*models.Registration, error) {
	query := `
		SELECT token, code, expired_at, user_id
		FROM registrations
		WHERE token = $1
	`

	reg := &models.Registration{}
	err := r.db.QueryRowContext(ctx, query, token).
		Scan(&reg.Token, &reg.Code, &reg.ExpiredAt, &reg.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return reg, nil
}

// RotateCode replaces only the verification code of the registration with
// the given token. Token and expiry are left untouched, so the pending
// registration keeps its original deadline.
func (r *PostgresRepository) RotateCode(ctx context.Context, token, code string) (*models.Registration, error) {
	query := `
		UPDATE registrations
		SET code = $2
		WHERE token = $1
		RETURNING token, code, expired_at, user_id
	`

	reg := &models.Registration{}
	err := r.db.QueryRowContext(ctx, query, token, code).
		Scan(&reg.Token, &reg.Code, &reg.ExpiredAt, &reg.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return reg, nil
}

// DeleteByToken removes a registration by its register token.
func (r *PostgresRepository) DeleteByToken(ctx context.Context, token string) error {
	query := `
		DELETE FROM registrations
		WHERE token = $1
	`
	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
