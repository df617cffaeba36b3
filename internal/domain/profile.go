package domain

import "time"

// ProfileStatus enumerates staff approval states. A profile starts at
// pending and is flipped to approved or rejected by an administrator;
// nothing in the login path ever writes this field.
type ProfileStatus string

const (
	ProfileStatusPending  ProfileStatus = "pending"
	ProfileStatusApproved ProfileStatus = "approved"
	ProfileStatusRejected ProfileStatus = "rejected"
)

// DefaultRole is assigned to newly registered staff profiles.
const DefaultRole = "Staff"

// Profile is the application-owned row describing a staff member,
// one-to-one with Account via the unique user_id key.
type Profile struct {
	ID        string
	UserID    string
	FullName  string
	Status    ProfileStatus
	Role      string
	AvatarURL *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileUpdate carries a partial profile write. Nil fields are left
// untouched by Apply and by the SQL upsert.
type ProfileUpdate struct {
	UserID    string
	FullName  *string
	Role      *string
	AvatarURL *string
}

// Empty reports whether the update carries no fields at all.
func (u ProfileUpdate) Empty() bool {
	return u.FullName == nil && u.Role == nil && u.AvatarURL == nil
}

// Apply merges the update into an existing profile, returning the merged
// copy. Status is never writable through an update; it belongs to the
// administrative actor only.
func (u ProfileUpdate) Apply(existing Profile) Profile {
	merged := existing
	if u.FullName != nil {
		merged.FullName = *u.FullName
	}
	if u.Role != nil {
		merged.Role = *u.Role
	}
	if u.AvatarURL != nil {
		merged.AvatarURL = u.AvatarURL
	}
	return merged
}

// FallbackProfile builds a minimal in-memory profile for an account that
// has no profile row. The result is never approved: an absent row is a
// data-consistency problem, not an access grant.
func FallbackProfile(account Account) Profile {
	return Profile{
		UserID:   account.ID,
		FullName: account.Email,
		Status:   ProfileStatusPending,
		Role:     DefaultRole,
	}
}
