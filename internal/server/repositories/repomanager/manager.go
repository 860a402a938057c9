package repomanager

import (
	"context"
	"database/sql"

	"github.com/henkenclub/account/internal/dbx"
	"github.com/henkenclub/account/internal/server/repositories/registrations"
	"github.com/henkenclub/account/internal/server/repositories/tempusers"
	"github.com/henkenclub/account/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a specific DBTX, so a flow
// can use the same repository code inside and outside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	TempUsers(db dbx.DBTX) tempusers.Repository
	Registrations(db dbx.DBTX) registrations.Repository
}
