package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/gate"
)

var errNotFound = errors.New("profile not found")

type fakeProfileRepo struct {
	rows map[string]domain.Profile

	upsertErr error
	getErr    error
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{rows: map[string]domain.Profile{}}
}

func (f *fakeProfileRepo) Upsert(_ context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	existing, ok := f.rows[update.UserID]
	if !ok {
		existing = domain.Profile{
			UserID: update.UserID,
			Status: domain.ProfileStatusPending,
			Role:   domain.DefaultRole,
		}
	}
	merged := update.Apply(existing)
	f.rows[update.UserID] = merged
	return &merged, nil
}

func (f *fakeProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	row, ok := f.rows[userID]
	if !ok {
		return nil, errNotFound
	}
	return &row, nil
}

func (f *fakeProfileRepo) SetStatus(_ context.Context, userID string, status domain.ProfileStatus) error {
	row, ok := f.rows[userID]
	if !ok {
		return errNotFound
	}
	row.Status = status
	f.rows[userID] = row
	return nil
}

func (f *fakeProfileRepo) IsNotFound(err error) bool {
	return errors.Is(err, errNotFound)
}

func TestProfileGetMergesAccountEmail(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.rows["u1"] = domain.Profile{UserID: "u1", FullName: "Alice", Status: domain.ProfileStatusApproved, Role: "Staff"}
	svc := NewProfileService(repo, nil, nil)

	view, err := svc.Get(context.Background(), domain.Account{ID: "u1", Email: "a@x.com"})
	require.NoError(t, err)
	require.Equal(t, "Alice", view.Profile.FullName)
	require.Equal(t, "a@x.com", view.Email)
}

func TestProfileGetMissingRowFallsBack(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nil, nil)

	view, err := svc.Get(context.Background(), domain.Account{ID: "u1", Email: "a@x.com"})
	require.NoError(t, err)
	require.Equal(t, domain.ProfileStatusPending, view.Profile.Status)
	require.Equal(t, "a@x.com", view.Profile.FullName)
}

func TestProfileGetStoreErrorIsDataSync(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.getErr = errors.New("record store down")
	svc := NewProfileService(repo, nil, nil)

	_, err := svc.Get(context.Background(), domain.Account{ID: "u1"})
	var dsErr *gate.DataSyncError
	require.ErrorAs(t, err, &dsErr)
}

func TestProfileUpdatePartialPreservesFields(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.rows["u1"] = domain.Profile{UserID: "u1", FullName: "Alice", Role: "Staff", Status: domain.ProfileStatusApproved}
	svc := NewProfileService(repo, nil, nil)

	role := "Admin"
	updated, err := svc.Update(context.Background(), domain.ProfileUpdate{UserID: "u1", Role: &role})
	require.NoError(t, err)
	require.Equal(t, "Admin", updated.Role)
	require.Equal(t, "Alice", updated.FullName)
}

func TestProfileUpdateEmptyRejected(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nil, nil)

	_, err := svc.Update(context.Background(), domain.ProfileUpdate{UserID: "u1"})
	var vErr *gate.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCommitAvatarRequiresKey(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nil, nil)

	_, err := svc.CommitAvatar(context.Background(), "u1", "")
	var vErr *gate.ValidationError
	require.ErrorAs(t, err, &vErr)
}
