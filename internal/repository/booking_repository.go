package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/booking-service/internal/domain"
)

// BookingFilter captures the staff screens' query parameters. Rejected
// bookings are excluded at the SQL level regardless of filter.
type BookingFilter struct {
	Status *domain.BookingStatus
	OnDate *time.Time
	Limit  int
	Offset int
}

// BookingRepository encapsulates booking persistence for the read-only
// staff screens.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListVisible(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)
	CountVisible(ctx context.Context) (int, error)
}

type bookingRepository struct {
	pool *pgxpool.Pool
}

// NewBookingRepository instantiates repository.
func NewBookingRepository(pool *pgxpool.Pool) BookingRepository {
	return &bookingRepository{pool: pool}
}

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (event_type, event_date, guest_count, customer_name, venue, notes, booking_status)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		booking.EventType,
		booking.EventDate,
		booking.GuestCount,
		booking.CustomerName,
		booking.Venue,
		booking.Notes,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	const query = `
        SELECT id, event_type, event_date, guest_count, customer_name, venue, notes, booking_status, created_at, updated_at
        FROM bookings WHERE id=$1 AND booking_status <> 'rejected'`

	var booking domain.Booking
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.EventType,
		&booking.EventDate,
		&booking.GuestCount,
		&booking.CustomerName,
		&booking.Venue,
		&booking.Notes,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListVisible(ctx context.Context, filter BookingFilter) ([]domain.Booking, error) {
	query := `
        SELECT id, event_type, event_date, guest_count, customer_name, venue, notes, booking_status, created_at, updated_at
        FROM bookings
        WHERE booking_status <> 'rejected'`
	args := []any{}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += ` AND booking_status = $` + strconv.Itoa(len(args))
	}
	if filter.OnDate != nil {
		args = append(args, filter.OnDate.Format("2006-01-02"))
		query += ` AND event_date = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY event_date ASC`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (r *bookingRepository) CountVisible(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM bookings WHERE booking_status <> 'rejected'`

	var count int
	if err := r.pool.QueryRow(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanBookings(rows pgx.Rows) ([]domain.Booking, error) {
	bookings := []domain.Booking{}
	for rows.Next() {
		var booking domain.Booking
		if err := rows.Scan(
			&booking.ID,
			&booking.EventType,
			&booking.EventDate,
			&booking.GuestCount,
			&booking.CustomerName,
			&booking.Venue,
			&booking.Notes,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, rows.Err()
}

