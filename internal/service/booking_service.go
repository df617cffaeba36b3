package service

import (
	"context"
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/repository"
)

// Tab names used by the events screen.
const (
	TabApproved = "approved"
	TabPending  = "pending"
	TabAll      = "all"
)

// Overview summarizes bookings for the dashboard: totals plus today's
// events. Rejected bookings count nowhere.
type Overview struct {
	TotalBookings int
	TodayCount    int
	TodayBookings []domain.Booking
}

// BookingService backs the dashboard and events screens with read-only
// queries over the booking store.
type BookingService struct {
	bookings repository.BookingRepository
	now      func() time.Time
}

// NewBookingService creates the service.
func NewBookingService(bookings repository.BookingRepository) *BookingService {
	return &BookingService{bookings: bookings, now: time.Now}
}

// ListByTab returns visible bookings for the given screen tab, ordered
// by event date ascending. Unknown tabs behave like "all".
func (s *BookingService) ListByTab(ctx context.Context, tab string) ([]domain.Booking, error) {
	filter := repository.BookingFilter{}
	switch tab {
	case TabApproved:
		status := domain.BookingStatusApproved
		filter.Status = &status
	case TabPending:
		status := domain.BookingStatusPending
		filter.Status = &status
	}
	return s.bookings.ListVisible(ctx, filter)
}

// GetOverview computes the dashboard numbers.
func (s *BookingService) GetOverview(ctx context.Context) (*Overview, error) {
	total, err := s.bookings.CountVisible(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	todays, err := s.bookings.ListVisible(ctx, repository.BookingFilter{OnDate: &today})
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalBookings: total,
		TodayCount:    len(todays),
		TodayBookings: todays,
	}, nil
}
