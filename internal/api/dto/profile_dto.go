package dto

import "github.com/spec-kit/booking-service/internal/domain"

// ProfileResponse is the wire shape of the profile screen.
type ProfileResponse struct {
	UserID    string  `json:"user_id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	Status    string  `json:"status"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// NewProfileResponse maps a profile and its account email.
func NewProfileResponse(p domain.Profile, email string) ProfileResponse {
	return ProfileResponse{
		UserID:    p.UserID,
		Email:     email,
		FullName:  p.FullName,
		Role:      p.Role,
		Status:    string(p.Status),
		AvatarURL: p.AvatarURL,
	}
}

// UpdateProfileRequest carries a partial profile edit. Omitted fields
// are left untouched.
type UpdateProfileRequest struct {
	FullName  *string `json:"full_name,omitempty"`
	Role      *string `json:"role,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// AvatarUploadRequest asks for a presigned upload slot.
type AvatarUploadRequest struct {
	FileExt string `json:"file_ext"`
}

// AvatarUploadResponse returns the upload slot.
type AvatarUploadResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	PublicURL string `json:"public_url"`
}

// AvatarCommitRequest records an uploaded object on the profile.
type AvatarCommitRequest struct {
	Key string `json:"key"`
}
