package auth

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/domain"
	apperrors "github.com/spec-kit/booking-service/pkg/errorutil"
)

type fakeValidator struct {
	account *domain.Account
	err     error
}

func (f *fakeValidator) CurrentUser(_ context.Context, _ string) (*domain.Account, error) {
	return f.account, f.err
}

var errNoProfile = errors.New("profile not found")

type fakeProfiles struct {
	profile *domain.Profile
	err     error
}

func (f *fakeProfiles) GetByUserID(_ context.Context, _ string) (*domain.Profile, error) {
	return f.profile, f.err
}

func (f *fakeProfiles) IsNotFound(err error) bool {
	return errors.Is(err, errNoProfile)
}

func newTestApp(mw *AuthMiddleware) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"error": domainErr.Code})
		},
	})
	app.Get("/protected", mw.Handle, func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return fiber.NewError(fiber.StatusInternalServerError, "principal missing")
		}
		return c.JSON(fiber.Map{"email": principal.Account.Email})
	})
	return app
}

func protectedRequest(t *testing.T, app *fiber.App, authHeader string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func approvedProfile(userID string) *domain.Profile {
	return &domain.Profile{UserID: userID, FullName: "Pat Staff", Role: domain.DefaultRole, Status: domain.ProfileStatusApproved}
}

func TestMiddlewareApprovedAccountPasses(t *testing.T) {
	account := &domain.Account{ID: "u1", Email: "pat@example.com"}
	mw := NewAuthMiddleware(&fakeValidator{account: account}, &fakeProfiles{profile: approvedProfile("u1")})

	status := protectedRequest(t, newTestApp(mw), "Bearer token")
	require.Equal(t, fiber.StatusOK, status)
}

func TestMiddlewareMissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(&fakeValidator{}, &fakeProfiles{})

	status := protectedRequest(t, newTestApp(mw), "")
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestMiddlewareMalformedHeader(t *testing.T) {
	mw := NewAuthMiddleware(&fakeValidator{}, &fakeProfiles{})

	status := protectedRequest(t, newTestApp(mw), "Basic abc123")
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestMiddlewareRevokedSession(t *testing.T) {
	mw := NewAuthMiddleware(&fakeValidator{err: errors.New("session revoked")}, &fakeProfiles{})

	status := protectedRequest(t, newTestApp(mw), "Bearer token")
	require.Equal(t, fiber.StatusUnauthorized, status)
}

func TestMiddlewarePendingAccountForbidden(t *testing.T) {
	account := &domain.Account{ID: "u1", Email: "pat@example.com"}
	profile := approvedProfile("u1")
	profile.Status = domain.ProfileStatusPending
	mw := NewAuthMiddleware(&fakeValidator{account: account}, &fakeProfiles{profile: profile})

	status := protectedRequest(t, newTestApp(mw), "Bearer token")
	require.Equal(t, fiber.StatusForbidden, status)
}

func TestMiddlewareMissingProfileForbidden(t *testing.T) {
	// Fallback profiles are never approved, so access is denied.
	account := &domain.Account{ID: "u1", Email: "pat@example.com"}
	mw := NewAuthMiddleware(&fakeValidator{account: account}, &fakeProfiles{err: errNoProfile})

	status := protectedRequest(t, newTestApp(mw), "Bearer token")
	require.Equal(t, fiber.StatusForbidden, status)
}

func TestMiddlewareUnreadableStatusFailsClosed(t *testing.T) {
	account := &domain.Account{ID: "u1", Email: "pat@example.com"}
	mw := NewAuthMiddleware(&fakeValidator{account: account}, &fakeProfiles{err: errors.New("connection reset")})

	status := protectedRequest(t, newTestApp(mw), "Bearer token")
	require.Equal(t, fiber.StatusForbidden, status)
}

func TestMiddlewareErrorsAreDomainErrors(t *testing.T) {
	mw := NewAuthMiddleware(&fakeValidator{err: errors.New("bad token")}, &fakeProfiles{})

	app := fiber.New()
	var captured error
	app.Get("/protected", func(c *fiber.Ctx) error {
		captured = mw.Handle(c)
		return nil
	})
	_ = protectedRequest(t, app, "Bearer token")

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, captured, &domainErr)
	require.Equal(t, "UNAUTHORIZED", domainErr.Code)
}
