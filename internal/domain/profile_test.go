package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdateApply_PartialNeverClobbers(t *testing.T) {
	avatar := "https://cdn.example.com/avatars/a.png"
	existing := Profile{
		UserID:    "u1",
		FullName:  "Alice",
		Status:    ProfileStatusApproved,
		Role:      "Staff",
		AvatarURL: &avatar,
	}

	merged := ProfileUpdate{UserID: "u1", Role: strPtr("Admin")}.Apply(existing)

	require.Equal(t, "Alice", merged.FullName)
	require.Equal(t, "Admin", merged.Role)
	require.Equal(t, ProfileStatusApproved, merged.Status)
	require.Equal(t, &avatar, merged.AvatarURL)
}

func TestProfileUpdateApply_StatusNeverWritable(t *testing.T) {
	existing := Profile{UserID: "u1", FullName: "Alice", Status: ProfileStatusPending}

	merged := ProfileUpdate{
		UserID:   "u1",
		FullName: strPtr("Alice B"),
		Role:     strPtr("Admin"),
	}.Apply(existing)

	require.Equal(t, ProfileStatusPending, merged.Status)
	require.Equal(t, "Alice B", merged.FullName)
}

func TestProfileUpdateEmpty(t *testing.T) {
	require.True(t, ProfileUpdate{UserID: "u1"}.Empty())
	require.False(t, ProfileUpdate{UserID: "u1", FullName: strPtr("x")}.Empty())
}

func TestFallbackProfileIsNeverApproved(t *testing.T) {
	p := FallbackProfile(Account{ID: "u1", Email: "a@x.com"})
	require.Equal(t, "u1", p.UserID)
	require.Equal(t, "a@x.com", p.FullName)
	require.Equal(t, ProfileStatusPending, p.Status)
}
