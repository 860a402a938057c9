package tempusers

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

// Upsert creates or refreshes the temporary user for the given email and
// returns the stored row. The id is generated by the database on first
// insert and stays stable across re-submissions.
func (r *PostgresRepository) Upsert(ctx context.Context, user *models.TemporaryUser) (*models.TemporaryUser, error) {
	query := `
		INSERT INTO temporary_users (email, alias, password_digest, display_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET
			alias = excluded.alias,
			password_digest = excluded.password_digest,
			display_name = excluded.display_name
		RETURNING id, email, alias, password_digest, display_name
	`

	stored := &models.TemporaryUser{}
	err := r.db.QueryRowContext(ctx, query,
		user.Email, user.Alias, user.PasswordDigest, user.DisplayName).
		Scan(&stored.ID, &stored.Email, &stored.Alias, &stored.PasswordDigest, &stored.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return stored, nil
}

// FindByID returns the temporary user with the given id.
func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*models.TemporaryUser, error) {
	query := `
		SELECT id, email, alias, password_digest, display_name
		FROM temporary_users
		WHERE id = $1
	`

	user := &models.TemporaryUser{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Email, &user.Alias, &user.PasswordDigest, &user.DisplayName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// Delete removes a temporary user by id.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM temporary_users
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
