package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/repository"
)

type fakeBookingRepo struct {
	bookings []domain.Booking

	lastFilter repository.BookingFilter
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) error {
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id && b.Status != domain.BookingStatusRejected {
			return &b, nil
		}
	}
	return nil, context.Canceled
}

func (f *fakeBookingRepo) ListVisible(_ context.Context, filter repository.BookingFilter) ([]domain.Booking, error) {
	f.lastFilter = filter
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.Status == domain.BookingStatusRejected {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.OnDate != nil && !b.OnDate(*filter.OnDate) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBookingRepo) CountVisible(_ context.Context) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.Status != domain.BookingStatusRejected {
			count++
		}
	}
	return count, nil
}

func seedBookings(now time.Time) []domain.Booking {
	return []domain.Booking{
		{ID: "b1", EventType: "Wedding", EventDate: now, Status: domain.BookingStatusApproved},
		{ID: "b2", EventType: "Birthday", EventDate: now.AddDate(0, 0, 1), Status: domain.BookingStatusPending},
		{ID: "b3", EventType: "Corporate", EventDate: now, Status: domain.BookingStatusRejected},
		{ID: "b4", EventType: "Reunion", EventDate: now.AddDate(0, 0, 2), Status: domain.BookingStatusApproved},
	}
}

func TestListByTabFiltersStatus(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: seedBookings(now)}
	svc := NewBookingService(repo)

	approved, err := svc.ListByTab(context.Background(), TabApproved)
	require.NoError(t, err)
	require.Len(t, approved, 2)

	pending, err := svc.ListByTab(context.Background(), TabPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "b2", pending[0].ID)
}

func TestListByTabAllNeverShowsRejected(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: seedBookings(now)}
	svc := NewBookingService(repo)

	all, err := svc.ListByTab(context.Background(), TabAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, b := range all {
		require.NotEqual(t, domain.BookingStatusRejected, b.Status)
	}
	require.Nil(t, repo.lastFilter.Status)
}

func TestListByTabUnknownBehavesLikeAll(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: seedBookings(now)}
	svc := NewBookingService(repo)

	out, err := svc.ListByTab(context.Background(), "whatever")
	require.NoError(t, err)
	require.Len(t, out, 3)
}

func TestGetOverviewCountsToday(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	repo := &fakeBookingRepo{bookings: seedBookings(now)}
	svc := NewBookingService(repo)
	svc.now = func() time.Time { return now }

	overview, err := svc.GetOverview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, overview.TotalBookings)
	require.Equal(t, 1, overview.TodayCount)
	require.Equal(t, "b1", overview.TodayBookings[0].ID)
}
