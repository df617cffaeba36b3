package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/gate"
	"github.com/spec-kit/booking-service/internal/repository"
	"github.com/spec-kit/booking-service/internal/session"
)

// AccountService handles credential maintenance for signed-in staff.
type AccountService struct {
	accounts   repository.AccountRepository
	sessions   *session.Store
	bcryptCost int
	logger     *zap.Logger
}

// NewAccountService creates the service.
func NewAccountService(accounts repository.AccountRepository, sessions *session.Store, bcryptCost int, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{accounts: accounts, sessions: sessions, bcryptCost: bcryptCost, logger: logger}
}

// ChangePassword re-authenticates with the current password before
// updating the hash, then revokes every session of the user so the new
// password takes effect everywhere. The caller must sign in again.
func (s *AccountService) ChangePassword(ctx context.Context, account domain.Account, currentPassword, newPassword, confirmPassword string) error {
	switch {
	case currentPassword == "" || newPassword == "":
		return &gate.ValidationError{Message: "current and new password are required"}
	case newPassword != confirmPassword:
		return &gate.ValidationError{Message: "passwords do not match"}
	}

	if err := auth.ComparePassword(account.PasswordHash, currentPassword); err != nil {
		return &gate.AuthServiceError{Op: "change password", Err: session.ErrInvalidCredentials}
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.accounts.UpdatePassword(ctx, account.ID, hash); err != nil {
		return err
	}

	if err := s.sessions.InvalidateAll(ctx, account.ID); err != nil {
		// the password already changed; stale sessions die at token expiry
		s.logger.Warn("session revocation after password change failed",
			zap.String("user_id", account.ID), zap.Error(err))
	}
	return nil
}
