package auth

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/domain"
	apperrors "github.com/spec-kit/booking-service/pkg/errorutil"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller.
type Principal struct {
	Account domain.Account
	Profile domain.Profile
	Token   string
}

// SessionValidator resolves a bearer token to its account, failing when
// the token is invalid, expired, or its session has been revoked.
type SessionValidator interface {
	CurrentUser(ctx context.Context, token string) (*domain.Account, error)
}

// ProfileReader loads the profile row gating access decisions.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	IsNotFound(err error) bool
}

// AuthMiddleware validates bearer tokens, loads the principal, and
// enforces the approval policy: only accounts whose profile status is
// approved may reach protected routes. An unreadable status denies
// access rather than granting it.
type AuthMiddleware struct {
	sessions SessionValidator
	profiles ProfileReader
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(sessions SessionValidator, profiles ProfileReader) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, profiles: profiles}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}
	token := parts[1]

	account, err := m.sessions.CurrentUser(c.Context(), token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid or revoked session")
	}

	profile, err := m.profiles.GetByUserID(c.Context(), account.ID)
	if err != nil {
		if m.profiles.IsNotFound(err) {
			fallback := domain.FallbackProfile(*account)
			profile = &fallback
		} else {
			// fail closed: an unreadable status is a denial
			return apperrors.NewForbidden("account status unavailable")
		}
	}
	if profile.Status != domain.ProfileStatusApproved {
		return apperrors.NewForbidden("account not approved")
	}

	c.Locals(principalKey, &Principal{Account: *account, Profile: *profile, Token: token})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
