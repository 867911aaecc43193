package booking

import "github.com/salonic/salon-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusDone      Status = "done"
)

// ParseStatus accepts the three stored status values. The admin panel may
// move a booking between any of them; cancellation is the soft-delete, the
// row itself is never removed.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusBooked, StatusCancelled, StatusDone:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}
