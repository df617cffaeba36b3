package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/http/handlers"
	"github.com/spec-kit/booking-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Bookings       *handlers.BookingsHandler
	Profile        *handlers.ProfileHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. Everything past the auth group runs
// behind the approval-enforcing middleware.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.AuthMiddleware.Handle, cfg.Auth.Logout)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, cfg.Auth.ChangePassword)

	dashboard := app.Group("/dashboard", cfg.AuthMiddleware.Handle)
	dashboard.Get("/overview", cfg.Bookings.Overview)

	bookings := app.Group("/bookings", cfg.AuthMiddleware.Handle)
	bookings.Get("/", cfg.Bookings.List)

	profile := app.Group("/profile", cfg.AuthMiddleware.Handle)
	profile.Get("/", cfg.Profile.Get)
	profile.Patch("/", cfg.Profile.Update)
	profile.Post("/avatar/upload-url", cfg.Profile.BeginAvatarUpload)
	profile.Post("/avatar", cfg.Profile.CommitAvatar)
}
