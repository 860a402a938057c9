// Package services contains the server-side business flows: token
// issuance/verification, the registration state machine, sign-in, and
// account lookups.
package services

import (
	"time"

	"github.com/henkenclub/account/internal/server/auth"
	"github.com/henkenclub/account/internal/server/config"
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenService issues and verifies the two token kinds. Access and refresh
// tokens are signed with distinct secrets and lifetimes, so one kind never
// verifies as the other. Tokens are self-contained; nothing is persisted.
type TokenService struct {
	accessSecret                 []byte
	refreshSecret                []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewTokenService constructs a TokenService from server config.
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		accessSecret:                 []byte(cfg.AccessJWTSecret),
		refreshSecret:                []byte(cfg.RefreshJWTSecret),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// IssueAccessToken mints an access token for userID.
func (s *TokenService) IssueAccessToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.accessSecret, s.accessTokenValidityDuration)
}

// IssueRefreshToken mints a refresh token for userID.
func (s *TokenService) IssueRefreshToken(userID string) (string, error) {
	return auth.GenerateToken(userID, s.refreshSecret, s.refreshTokenValidityDuration)
}

// IssuePair mints a fresh access/refresh pair for userID.
func (s *TokenService) IssuePair(userID string) (*TokenPair, error) {
	access, err := s.IssueAccessToken(userID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.IssueRefreshToken(userID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccessToken checks the token against the access secret and returns
// the user id it was issued for. Failures surface as common.ErrTokenExpired
// or common.ErrInvalidToken.
func (s *TokenService) VerifyAccessToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.accessSecret)
}

// VerifyRefreshToken checks the token against the refresh secret.
func (s *TokenService) VerifyRefreshToken(token string) (string, error) {
	return auth.GetUserIDFromToken(token, s.refreshSecret)
}

// Refresh verifies an old refresh token and, if valid, mints a completely
// new pair. There is no revocation list: the old refresh token stays
// independently valid until its own expiry. That is a deliberate simplicity
// tradeoff of this design, not an oversight.
func (s *TokenService) Refresh(refreshToken string) (*TokenPair, error) {
	userID, err := s.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}
	return s.IssuePair(userID)
}
