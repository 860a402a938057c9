package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/henkenclub/account/internal/common"
	"github.com/henkenclub/account/internal/dbx"
	"github.com/henkenclub/account/internal/logging"
	"github.com/henkenclub/account/internal/server/auth"
	"github.com/henkenclub/account/internal/server/config"
	"github.com/henkenclub/account/internal/server/mailer"
	"github.com/henkenclub/account/internal/server/models"
	"github.com/henkenclub/account/internal/server/repositories/repomanager"
	"github.com/henkenclub/account/internal/server/repositories/users"
)

// register tokens are 64 hex chars
const registerTokenBytes = 32

// DuplicateCheck reports which identifying fields already belong to a
// registered account.
type DuplicateCheck struct {
	EmailDuplicated bool
	AliasDuplicated bool
}

// Any reports whether at least one field is taken.
func (c DuplicateCheck) Any() bool {
	return c.EmailDuplicated || c.AliasDuplicated
}

// DuplicateError is returned by BeginRegistration when the requested email or
// alias already belongs to a registered account. It wraps common.ErrorDuplicate
// so callers can match with errors.Is and still read the per-field detail.
type DuplicateError struct {
	Check DuplicateCheck
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate account fields: email=%v alias=%v",
		e.Check.EmailDuplicated, e.Check.AliasDuplicated)
}

func (e *DuplicateError) Unwrap() error {
	return common.ErrorDuplicate
}

// RegistrationPair is what a signup attempt hands back: the code travels to
// the user by email, the token goes to the caller, and promotion requires
// presenting both before ExpiredAt.
type RegistrationPair struct {
	Code      string
	Token     string
	ExpiredAt time.Time
}

// SignupService drives the registration state machine: stage a temporary
// user, deliver a verification code, and promote to a registered account
// once token and code are presented together.
type SignupService struct {
	db                   *sql.DB
	repos                repomanager.RepositoryManager
	mail                 mailer.Sender
	logger               logging.Logger
	registrationValidity time.Duration
	bcryptCost           int
	clock                func() time.Time
}

// NewSignupService constructs a SignupService.
func NewSignupService(db *sql.DB, repos repomanager.RepositoryManager,
	mail mailer.Sender, logger logging.Logger, cfg *config.Config) *SignupService {
	return &SignupService{
		db:                   db,
		repos:                repos,
		mail:                 mail,
		logger:               logger,
		registrationValidity: cfg.RegistrationValidityDuration,
		bcryptCost:           cfg.BcryptCost,
		clock:                time.Now,
	}
}

// CheckDuplicates looks the email and alias up among registered users.
// Temporary users are deliberately not consulted: an unfinished signup must
// never block somebody else from registering.
func (s *SignupService) CheckDuplicates(ctx context.Context, email string, alias string) (DuplicateCheck, error) {
	var check DuplicateCheck
	repo := s.repos.Users(s.db)

	if _, err := repo.Find(ctx, users.ByEmail(email)); err == nil {
		check.EmailDuplicated = true
	} else if !errors.Is(err, common.ErrorNotFound) {
		return check, fmt.Errorf("checking email: %w", err)
	}

	if _, err := repo.Find(ctx, users.ByAlias(alias)); err == nil {
		check.AliasDuplicated = true
	} else if !errors.Is(err, common.ErrorNotFound) {
		return check, fmt.Errorf("checking alias: %w", err)
	}

	return check, nil
}

// BeginRegistration stages a temporary user and a pending registration for
// it, then emails the verification code. Repeating the call with the same
// email replaces the staged data and yields a brand-new code, token and
// expiry. A taken email or alias fails with *DuplicateError before anything
// is written.
func (s *SignupService) BeginRegistration(ctx context.Context, email, alias, password, displayName string) (*RegistrationPair, error) {
	if email == "" || alias == "" || password == "" {
		return nil, fmt.Errorf("%w: email, alias and password are required", common.ErrorValidation)
	}
	if displayName == "" {
		displayName = alias
	}

	check, err := s.CheckDuplicates(ctx, email, alias)
	if err != nil {
		return nil, err
	}
	if check.Any() {
		return nil, &DuplicateError{Check: check}
	}

	digest, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	token, err := common.MakeRandHexString(registerTokenBytes)
	if err != nil {
		return nil, fmt.Errorf("generating register token: %w", err)
	}
	code := uuid.NewString()
	expiredAt := s.clock().Add(s.registrationValidity)

	var tmp *models.TemporaryUser
	var reg *models.Registration
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var txErr error
		tmp, txErr = s.repos.TempUsers(tx).Upsert(ctx, &models.TemporaryUser{
			Email:          email,
			Alias:          alias,
			PasswordDigest: digest,
			DisplayName:    displayName,
		})
		if txErr != nil {
			return txErr
		}
		reg, txErr = s.repos.Registrations(tx).Upsert(ctx, &models.Registration{
			Token:     token,
			Code:      code,
			ExpiredAt: expiredAt,
			UserID:    tmp.ID,
		})
		return txErr
	})
	if err != nil {
		return nil, fmt.Errorf("staging registration: %w", err)
	}

	s.sendCode(ctx, tmp, reg)

	return &RegistrationPair{Code: reg.Code, Token: reg.Token, ExpiredAt: reg.ExpiredAt}, nil
}

// ResendVerification rotates the verification code of a pending registration
// and emails it again. The register token and the expiry window stay as they
// were: resending buys a fresh code, not more time.
func (s *SignupService) ResendVerification(ctx context.Context, token string) (*RegistrationPair, error) {
	reg, err := s.repos.Registrations(s.db).FindByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	reg, err = s.repos.Registrations(s.db).RotateCode(ctx, token, uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("rotating code: %w", err)
	}

	tmp, err := s.repos.TempUsers(s.db).FindByID(ctx, reg.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading temporary user: %w", err)
	}
	s.sendCode(ctx, tmp, reg)

	return &RegistrationPair{Code: reg.Code, Token: reg.Token, ExpiredAt: reg.ExpiredAt}, nil
}

// VerifyAndPromote turns a pending registration into a registered account.
// The caller must present the register token together with the emailed code.
// On success the staged rows are consumed in the same transaction that
// creates the user, so a code can never be redeemed twice. An unknown token
// or a wrong code fails with common.ErrorInvalidCredentials; a correct pair
// presented after the expiry fails with common.ErrRegistrationExpired.
// Promotion is idempotent at the users table: re-inserting an existing id is
// a no-op that returns the stored account.
func (s *SignupService) VerifyAndPromote(ctx context.Context, token string, code string) (string, error) {
	reg, err := s.repos.Registrations(s.db).FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", err
	}

	// expiry wins over a wrong code
	if reg.Status(s.clock()) == models.RegistrationExpired {
		return "", common.ErrRegistrationExpired
	}

	if subtle.ConstantTimeCompare([]byte(reg.Code), []byte(code)) != 1 {
		return "", common.ErrorInvalidCredentials
	}

	var userID string
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		tmp, txErr := s.repos.TempUsers(tx).FindByID(ctx, reg.UserID)
		if txErr != nil {
			return txErr
		}
		stored, txErr := s.repos.Users(tx).Upsert(ctx, &models.User{
			ID:             tmp.ID,
			Email:          tmp.Email,
			Alias:          tmp.Alias,
			PasswordDigest: tmp.PasswordDigest,
			DisplayName:    tmp.DisplayName,
		})
		if txErr != nil {
			return txErr
		}
		if txErr = s.repos.Registrations(tx).DeleteByToken(ctx, token); txErr != nil {
			return txErr
		}
		if txErr = s.repos.TempUsers(tx).Delete(ctx, tmp.ID); txErr != nil {
			return txErr
		}
		userID = stored.ID
		return nil
	})
	if err != nil {
		// the email or alias was claimed by somebody else mid-registration
		if errors.Is(err, common.ErrorDuplicate) {
			return "", common.ErrorDuplicate
		}
		return "", fmt.Errorf("promoting registration: %w", err)
	}

	return userID, nil
}

func (s *SignupService) sendCode(ctx context.Context, tmp *models.TemporaryUser, reg *models.Registration) {
	err := s.mail.SendVerificationCode(ctx, mailer.Message{
		Email:       tmp.Email,
		DisplayName: tmp.DisplayName,
		Code:        reg.Code,
		ExpiredAt:   reg.ExpiredAt,
	})
	if err != nil {
		// the pair is already staged; the user can ask for a resend
		s.logger.Warn(ctx, "sending verification code failed", "email", tmp.Email, "error", err)
	}
}
