package services

import (
	"context"
	"database/sql"

	"github.com/henkenclub/account/internal/server/models"
	"github.com/henkenclub/account/internal/server/repositories/repomanager"
	"github.com/henkenclub/account/internal/server/repositories/users"
)

// AccountService exposes read access to registered accounts.
type AccountService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

// NewAccountService constructs an AccountService.
func NewAccountService(db *sql.DB, repos repomanager.RepositoryManager) *AccountService {
	return &AccountService{db: db, repos: repos}
}

// GetUser resolves a selector to a registered user. An unmatched selector
// fails with common.ErrorNotFound.
func (s *AccountService) GetUser(ctx context.Context, sel users.Selector) (*models.User, error) {
	return s.repos.Users(s.db).Find(ctx, sel)
}
