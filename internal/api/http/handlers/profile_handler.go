package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/service"
)

// ProfileHandler backs the profile screen: view, partial edits, and the
// two-step avatar upload.
type ProfileHandler struct {
	profiles *service.ProfileService
}

// NewProfileHandler constructs handler.
func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get handles GET /profile.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	view, err := h.profiles.Get(c.Context(), principal.Account)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(view.Profile, view.Email)})
}

// Update handles PATCH /profile. Omitted fields are left untouched;
// status is not writable here.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.profiles.Update(c.Context(), domain.ProfileUpdate{
		UserID:    principal.Account.ID,
		FullName:  req.FullName,
		Role:      req.Role,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(*profile, principal.Account.Email)})
}

// BeginAvatarUpload handles POST /profile/avatar/upload-url.
func (h *ProfileHandler) BeginAvatarUpload(c *fiber.Ctx) error {
	if _, ok := auth.PrincipalFromContext(c); !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.AvatarUploadRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	upload, err := h.profiles.BeginAvatarUpload(c.Context(), req.FileExt)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.AvatarUploadResponse{
		Key:       upload.Key,
		UploadURL: upload.UploadURL,
		PublicURL: upload.PublicURL,
	}})
}

// CommitAvatar handles POST /profile/avatar.
func (h *ProfileHandler) CommitAvatar(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.AvatarCommitRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.profiles.CommitAvatar(c.Context(), principal.Account.ID, req.Key)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewProfileResponse(*profile, principal.Account.Email)})
}
