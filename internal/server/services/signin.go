package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/henkenclub/account/internal/common"
	"github.com/henkenclub/account/internal/logging"
	"github.com/henkenclub/account/internal/server/auth"
	"github.com/henkenclub/account/internal/server/models"
	"github.com/henkenclub/account/internal/server/repositories/repomanager"
	"github.com/henkenclub/account/internal/server/repositories/users"
)

// SigninService authenticates registered users and hands out token pairs.
type SigninService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	tokens *TokenService
	logger logging.Logger
}

// NewSigninService constructs a SigninService.
func NewSigninService(db *sql.DB, repos repomanager.RepositoryManager,
	tokens *TokenService, logger logging.Logger) *SigninService {
	return &SigninService{db: db, repos: repos, tokens: tokens, logger: logger}
}

// FindUser resolves a selector to a registered user.
func (s *SigninService) FindUser(ctx context.Context, sel users.Selector) (*models.User, error) {
	return s.repos.Users(s.db).Find(ctx, sel)
}

// VerifyCredentials reports whether password matches the stored digest of
// userID. A missing user short-circuits to false without touching bcrypt.
func (s *SigninService) VerifyCredentials(ctx context.Context, userID string, password string) bool {
	user, err := s.repos.Users(s.db).Find(ctx, users.ByID(userID))
	if err != nil {
		if !errors.Is(err, common.ErrorNotFound) {
			s.logger.Error(ctx, "loading user for credential check", "error", err)
		}
		return false
	}
	return auth.CheckPassword(password, user.PasswordDigest)
}

// Signin authenticates the user the selector points at and issues a fresh
// token pair. An unknown user fails with common.ErrorNotFound, a wrong
// password with common.ErrorInvalidCredentials.
func (s *SigninService) Signin(ctx context.Context, sel users.Selector, password string) (*TokenPair, error) {
	user, err := s.FindUser(ctx, sel)
	if err != nil {
		return nil, err
	}
	if !s.VerifyCredentials(ctx, user.ID, password) {
		return nil, common.ErrorInvalidCredentials
	}
	return s.tokens.IssuePair(user.ID)
}
