package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/booking-service/internal/domain"
)

// ProfileRepository defines persistence access for profile rows. Upsert
// is keyed by the unique user_id: insert-if-absent, update-if-present,
// so sign-up retries and races with first login cannot create a second
// row. Partial updates never clear fields absent from the update, and
// status is only ever written on first insert.
type ProfileRepository interface {
	Upsert(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	SetStatus(ctx context.Context, userID string, status domain.ProfileStatus) error
	IsNotFound(err error) bool
}

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation.
func NewProfileRepository(pool *pgxpool.Pool) ProfileRepository {
	return &profileRepository{pool: pool}
}

func (r *profileRepository) Upsert(ctx context.Context, update domain.ProfileUpdate) (*domain.Profile, error) {
	const query = `
        INSERT INTO profiles (user_id, full_name, role, avatar_url, status)
        VALUES ($1, COALESCE($2, ''), COALESCE($3, 'Staff'), $4, 'pending')
        ON CONFLICT (user_id) DO UPDATE SET
            full_name  = COALESCE($2, profiles.full_name),
            role       = COALESCE($3, profiles.role),
            avatar_url = COALESCE($4, profiles.avatar_url),
            updated_at = NOW()
        RETURNING id, user_id, full_name, status, role, avatar_url, created_at, updated_at`

	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query,
		update.UserID,
		update.FullName,
		update.Role,
		update.AvatarURL,
	).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.Status,
		&profile.Role,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	const query = `
        SELECT id, user_id, full_name, status, role, avatar_url, created_at, updated_at
        FROM profiles WHERE user_id=$1`

	var profile domain.Profile
	if err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.FullName,
		&profile.Status,
		&profile.Role,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SetStatus is the administrative status flip. Nothing in the login path
// calls this.
func (r *profileRepository) SetStatus(ctx context.Context, userID string, status domain.ProfileStatus) error {
	const query = `
        UPDATE profiles SET status=$1, updated_at=NOW()
        WHERE user_id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *profileRepository) IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
