package booking

import (
	"context"

	"github.com/salonic/salon-scheduler/internal/audit"
	domain "github.com/salonic/salon-scheduler/internal/domain/booking"
)

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	id int64,
	rawStatus string,
) error {

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return err
	}

	if err := uc.repo.UpdateBookingStatus(ctx, id, status); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_status_changed",
		Entity:   "booking",
		EntityID: id,
		Metadata: map[string]string{"status": string(status)},
	})

	return nil
}
