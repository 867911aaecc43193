package booking

import (
	"context"
	"strings"
	"time"

	domain "github.com/salonic/salon-scheduler/internal/domain/booking"
	"github.com/salonic/salon-scheduler/internal/httperr"
	"github.com/salonic/salon-scheduler/internal/models"
)

type GetAvailability struct {
	repo  domain.Repository
	hours domain.WorkingHours
}

func NewGetAvailability(repo domain.Repository, hours domain.WorkingHours) *GetAvailability {
	return &GetAvailability{repo: repo, hours: hours}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
	serviceName string,
) ([]domain.TimeSlot, error) {

	svc, err := findService(ctx, uc.repo, serviceName)
	if err != nil {
		return nil, err
	}

	dayBookings, err := uc.repo.ListBookingsByDate(ctx, date.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}

	// Only live bookings block slots. A cancelled row is the soft-delete
	// and must free its interval again.
	active := make([]models.Booking, 0, len(dayBookings))
	for _, b := range dayBookings {
		if b.Status == string(domain.StatusBooked) {
			active = append(active, b)
		}
	}

	return domain.ComputeAvailability(date, uc.hours, svc.DurationMin, active), nil
}

func findService(
	ctx context.Context,
	repo domain.Repository,
	name string,
) (*models.Service, error) {

	services, err := repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	for i := range services {
		if services[i].Name == name {
			return &services[i], nil
		}
	}
	return nil, httperr.ErrBusiness("service_not_found")
}
