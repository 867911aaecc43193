package booking

import (
	"context"

	"github.com/salonic/salon-scheduler/internal/models"
)

// Repository is the tabular store behind the app. Every read is a full
// sheet scan; there is no index and no transaction across a read followed
// by an append.
type Repository interface {
	// -------- Services --------
	ListServices(ctx context.Context) ([]models.Service, error)

	AppendService(ctx context.Context, svc *models.Service) error

	// -------- Bookings --------
	ListBookings(ctx context.Context) ([]models.Booking, error)

	ListBookingsByDate(ctx context.Context, date string) ([]models.Booking, error)

	AppendBooking(ctx context.Context, b *models.Booking) error

	// UpdateBookingStatus scans for the row carrying id and rewrites its
	// status cell. Returns a "booking_not_found" business error when no
	// row matches.
	UpdateBookingStatus(ctx context.Context, id int64, status Status) error
}
