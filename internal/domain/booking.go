package domain

import "time"

// BookingStatus enumerates lifecycle states for event bookings.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusApproved BookingStatus = "approved"
	BookingStatusRejected BookingStatus = "rejected"
)

// Booking is a catering event reservation shown on the staff dashboard.
// Rejected bookings are never surfaced to staff screens.
type Booking struct {
	ID           string
	EventType    string
	EventDate    time.Time
	GuestCount   int
	CustomerName string
	Venue        string
	Notes        string
	Status       BookingStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OnDate reports whether the booking's event falls on the given calendar
// day in the day's location.
func (b Booking) OnDate(day time.Time) bool {
	y1, m1, d1 := b.EventDate.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
