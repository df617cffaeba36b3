package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/service"
)

// BookingsHandler backs the dashboard and events screens.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookings *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

// List handles GET /bookings?tab=approved|pending|all.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	tab := c.Query("tab", service.TabAll)

	bookings, err := h.bookings.ListByTab(c.Context(), tab)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponses(bookings)})
}

// Overview handles GET /dashboard/overview.
func (h *BookingsHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.bookings.GetOverview(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.OverviewResponse{
		TotalBookings: overview.TotalBookings,
		TodayCount:    overview.TodayCount,
		TodayBookings: dto.NewBookingResponses(overview.TodayBookings),
	}})
}
