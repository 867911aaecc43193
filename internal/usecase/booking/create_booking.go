package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/salonic/salon-scheduler/internal/audit"
	domain "github.com/salonic/salon-scheduler/internal/domain/booking"
	"github.com/salonic/salon-scheduler/internal/httperr"
	"github.com/salonic/salon-scheduler/internal/models"
	"github.com/salonic/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceName string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Name        string
	Phone       string
	Note        string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	hours domain.WorkingHours
	loc   *time.Location

	now func() time.Time
	ids idGenerator
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	hours domain.WorkingHours,
	loc *time.Location,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
		hours: hours,
		loc:   loc,
		now:   time.Now,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	name := strings.TrimSpace(in.Name)
	phone := validators.NormalizePhone(in.Phone)
	if name == "" {
		return nil, httperr.ErrBusiness("missing_name")
	}
	if phone == "" {
		return nil, httperr.ErrBusiness("missing_phone")
	}

	svc, err := findService(ctx, uc.repo, in.ServiceName)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", in.Date+" "+in.Time, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	// The form only offers generated slots, but the API is open: reject
	// anything outside working hours instead of writing a row the slot
	// calculator could never have produced. Ending exactly at closing
	// time is fine.
	open, close := uc.hours.Window(start)
	if start.Before(open) || end.After(close) {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	// Best-effort conflict re-check right before the append. The read and
	// the write are still two separate round trips, so two guests racing
	// for the same slot can both pass this; it only narrows the window.
	dayBookings, err := uc.repo.ListBookingsByDate(ctx, start.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	for _, b := range dayBookings {
		if b.Status != string(domain.StatusBooked) {
			continue
		}
		bStart, perr := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.StartTime, uc.loc)
		if perr != nil {
			continue
		}
		bEnd, perr := time.ParseInLocation("2006-01-02 15:04", b.Date+" "+b.EndTime, uc.loc)
		if perr != nil {
			continue
		}
		if start.Before(bEnd) && end.After(bStart) {
			return nil, httperr.ErrBusiness("slot_taken")
		}
	}

	now := uc.now()
	b := &models.Booking{
		ID:          uc.ids.next(now),
		Date:        start.Format("2006-01-02"),
		StartTime:   start.Format("15:04"),
		EndTime:     end.Format("15:04"),
		Service:     svc.Name,
		DurationMin: svc.DurationMin,
		Name:        name,
		Phone:       phone,
		Status:      string(domain.StatusBooked),
		Note:        strings.TrimSpace(in.Note),
		CreatedAt:   now.UTC(),
	}

	if err := uc.repo.AppendBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]string{
			"date":    b.Date,
			"start":   b.StartTime,
			"service": b.Service,
		},
	})

	return b, nil
}

// ======================================================
// ID GENERATION
// ======================================================

// idGenerator derives ids from the creation time in milliseconds. Two
// submissions inside the same millisecond still get increasing ids.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) next(now time.Time) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := now.UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
