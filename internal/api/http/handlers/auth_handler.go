package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/gate"
	"github.com/spec-kit/booking-service/internal/service"
)

// AuthHandler exposes the gate's register/login flow over HTTP. Each
// request runs through a fresh gate; the gate's navigation handoff
// becomes the next_screen hint in the response.
type AuthHandler struct {
	sessions gate.SessionStore
	profiles gate.ProfileStore
	accounts *service.AccountService
	logger   *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(sessions gate.SessionStore, profiles gate.ProfileStore, accounts *service.AccountService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{sessions: sessions, profiles: profiles, accounts: accounts, logger: logger}
}

func (h *AuthHandler) newGate() *gate.Gate {
	nav := gate.NavigatorFunc(func(screen string) {
		h.logger.Debug("navigation", zap.String("screen", screen))
	})
	return gate.New(h.sessions, h.profiles, nav, h.logger)
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.newGate().Register(c.Context(), req.Email, req.Password, req.ConfirmPassword, req.FullName)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": authResponse(result)})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.newGate().Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.State != gate.StateAuthenticated {
		// authenticated but not authorized: the session is already gone
		status = http.StatusForbidden
	}
	return c.Status(status).JSON(fiber.Map{"data": authResponse(result)})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	if err := h.newGate().Logout(c.Context(), principal.Token); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"state": string(gate.StateUnauthenticated)}})
}

// ChangePassword handles POST /auth/password/change.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.accounts.ChangePassword(c.Context(), principal.Account, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"message":     "password updated; please sign in again",
		"next_screen": gate.ScreenAuth,
	}})
}

func authResponse(result *gate.Result) dto.AuthResponse {
	resp := dto.AuthResponse{
		State:      string(result.State),
		Message:    result.Message,
		NextScreen: result.NextScreen(),
	}
	if result.Session != nil {
		resp.Token = result.Session.Token
		expires := result.Session.ExpiresAt
		resp.ExpiresAt = &expires
	}
	if result.Warning != nil {
		resp.Warning = result.Warning.Error()
	}
	return resp
}
