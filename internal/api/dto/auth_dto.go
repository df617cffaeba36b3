package dto

import "time"

// RegisterRequest payload for staff sign-up.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	FullName        string `json:"full_name"`
}

// LoginRequest payload for sign-in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest payload for the password screen.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AuthResponse reports the gate's outcome. Token is present only for
// approved logins; NextScreen tells the client which stack to show.
type AuthResponse struct {
	State      string     `json:"state"`
	Message    string     `json:"message"`
	NextScreen string     `json:"next_screen"`
	Token      string     `json:"token,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Warning    string     `json:"warning,omitempty"`
}
