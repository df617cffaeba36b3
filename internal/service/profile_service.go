package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/gate"
	"github.com/spec-kit/booking-service/internal/repository"
	"github.com/spec-kit/booking-service/internal/storage"
)

// ProfileView is what the profile screen renders: the profile row plus
// the account's email.
type ProfileView struct {
	Profile domain.Profile
	Email   string
}

// AvatarUpload carries everything the client needs to push an image and
// then commit the resulting URL.
type AvatarUpload struct {
	Key       string
	UploadURL string
	PublicURL string
}

// ProfileService backs the profile screen: read, partial update, avatar
// uploads. Writes go through the same upsert path the gate uses, so the
// unique user_id key and the no-clobber rule hold everywhere.
type ProfileService struct {
	profiles repository.ProfileRepository
	avatars  *storage.AvatarStore
	logger   *zap.Logger
}

// NewProfileService creates the service.
func NewProfileService(profiles repository.ProfileRepository, avatars *storage.AvatarStore, logger *zap.Logger) *ProfileService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileService{profiles: profiles, avatars: avatars, logger: logger}
}

// Get loads the profile for the account. A missing row is reported as a
// data-consistency warning and rendered from account metadata.
func (s *ProfileService) Get(ctx context.Context, account domain.Account) (*ProfileView, error) {
	profile, err := s.profiles.GetByUserID(ctx, account.ID)
	if err != nil {
		if s.profiles.IsNotFound(err) {
			s.logger.Warn("account has no profile row", zap.String("user_id", account.ID))
			fallback := domain.FallbackProfile(account)
			return &ProfileView{Profile: fallback, Email: account.Email}, nil
		}
		return nil, &gate.DataSyncError{Op: "load profile", Err: err}
	}
	return &ProfileView{Profile: *profile, Email: account.Email}, nil
}

// Update applies a partial profile write. Last writer wins; untouched
// fields are preserved.
func (s *ProfileService) Update(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	if update.Empty() {
		return nil, &gate.ValidationError{Message: "no fields to update"}
	}
	profile, err := s.profiles.Upsert(ctx, update)
	if err != nil {
		return nil, &gate.DataSyncError{Op: "update profile", Err: err}
	}
	return profile, nil
}

// BeginAvatarUpload issues a presigned PUT URL for the image.
func (s *ProfileService) BeginAvatarUpload(ctx context.Context, fileExt string) (*AvatarUpload, error) {
	key, uploadURL, err := s.avatars.PresignUpload(ctx, fileExt)
	if err != nil {
		return nil, &gate.DataSyncError{Op: "presign avatar upload", Err: err}
	}
	return &AvatarUpload{
		Key:       key,
		UploadURL: uploadURL,
		PublicURL: s.avatars.PublicURL(key),
	}, nil
}

// CommitAvatar records the uploaded object's public URL on the profile.
// Failure here is surfaced but does not unwind anything: the object is
// already stored and the commit can be retried.
func (s *ProfileService) CommitAvatar(ctx context.Context, userID, key string) (*domain.Profile, error) {
	if key == "" {
		return nil, &gate.ValidationError{Message: "object key is required"}
	}
	publicURL := s.avatars.PublicURL(key)
	return s.Update(ctx, domain.ProfileUpdate{UserID: userID, AvatarURL: &publicURL})
}
