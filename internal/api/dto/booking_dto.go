package dto

import "github.com/spec-kit/booking-service/internal/domain"

// BookingResponse is the wire shape of a booking row.
type BookingResponse struct {
	ID           string `json:"id"`
	EventType    string `json:"event_type"`
	EventDate    string `json:"event_date"`
	GuestCount   int    `json:"guest_count"`
	CustomerName string `json:"customer_name,omitempty"`
	Venue        string `json:"venue,omitempty"`
	Status       string `json:"booking_status"`
}

// NewBookingResponse maps a domain booking.
func NewBookingResponse(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		EventType:    b.EventType,
		EventDate:    b.EventDate.Format("2006-01-02"),
		GuestCount:   b.GuestCount,
		CustomerName: b.CustomerName,
		Venue:        b.Venue,
		Status:       string(b.Status),
	}
}

// NewBookingResponses maps a slice.
func NewBookingResponses(bookings []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, NewBookingResponse(b))
	}
	return out
}

// OverviewResponse is the dashboard payload.
type OverviewResponse struct {
	TotalBookings int               `json:"total_bookings"`
	TodayCount    int               `json:"today_count"`
	TodayBookings []BookingResponse `json:"today_bookings"`
}
