package booking

import (
	"context"
	"sort"

	domain "github.com/salonic/salon-scheduler/internal/domain/booking"
	"github.com/salonic/salon-scheduler/internal/models"
)

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

// Execute returns every booking sorted by date, then start time. Both are
// ISO-style strings, so lexicographic order is chronological order.
func (uc *ListBookings) Execute(ctx context.Context) ([]models.Booking, error) {
	bookings, err := uc.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(bookings, func(i, j int) bool {
		if bookings[i].Date != bookings[j].Date {
			return bookings[i].Date < bookings[j].Date
		}
		return bookings[i].StartTime < bookings[j].StartTime
	})

	return bookings, nil
}
