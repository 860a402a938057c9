package users

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

// Find looks a user up by exactly one unique column.
func (r *PostgresRepository) Find(ctx context.Context, sel Selector) (*models.User, error) {
	var column string
	switch sel.Kind {
	case SelectByID:
		column = "id"
	case SelectByAlias:
		column = "alias"
	case SelectByEmail:
		column = "email"
	default:
		return nil, fmt.Errorf("unsupported selector kind: %d", sel.Kind)
	}

	query := fmt.Sprintf(
		`SELECT id, email, alias, password_digest, display_name FROM users WHERE %s = $1`,
		column,
	)

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, sel.Value).
		Scan(&user.ID, &user.Email, &user.Alias, &user.PasswordDigest, &user.DisplayName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

// Upsert inserts the user keyed by id. If a row with that id already exists
// the statement degrades to a no-op update of the id to itself, so the
// existing row is returned unchanged. A unique violation on email or alias
// surfaces as common.ErrorDuplicate.
func (r *PostgresRepository) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (id, email, alias, password_digest, display_name)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET id = users.id
		RETURNING id, email, alias, password_digest, display_name
	`

	stored := &models.User{}
	err := r.db.QueryRowContext(ctx, query,
		user.ID, user.Email, user.Alias, user.PasswordDigest, user.DisplayName).
		Scan(&stored.ID, &stored.Email, &stored.Alias, &stored.PasswordDigest, &stored.DisplayName)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorDuplicate
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return stored, nil
}
