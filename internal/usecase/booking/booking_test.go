package booking

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/salonic/salon-scheduler/internal/audit"
	domain "github.com/salonic/salon-scheduler/internal/domain/booking"
	"github.com/salonic/salon-scheduler/internal/httperr"
	"github.com/salonic/salon-scheduler/internal/models"
)

// ----------------------------------------------------
// In-memory repository
// ----------------------------------------------------

type fakeRepo struct {
	services []models.Service
	bookings []models.Booking
}

func (f *fakeRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeRepo) AppendService(ctx context.Context, svc *models.Service) error {
	f.services = append(f.services, *svc)
	return nil
}

func (f *fakeRepo) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeRepo) ListBookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	var day []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			day = append(day, b)
		}
	}
	return day, nil
}

func (f *fakeRepo) AppendBooking(ctx context.Context, b *models.Booking) error {
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeRepo) UpdateBookingStatus(ctx context.Context, id int64, status domain.Status) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = string(status)
			return nil
		}
	}
	return httperr.ErrBusiness("booking_not_found")
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services: []models.Service{
			{Name: "Géllakk", DurationMin: 60, Price: "8000"},
			{Name: "Manikűr", DurationMin: 45, Price: "6000"},
		},
	}
}

var testHours = domain.WorkingHours{
	Open:              "09:00",
	Close:             "18:00",
	SlotMinutes:       30,
	MinVisibleMinutes: 15,
}

func newCreateUC(repo domain.Repository) *CreateBooking {
	return NewCreateBooking(repo, audit.NewDispatcher(zap.NewNop()), testHours, time.UTC)
}

// ----------------------------------------------------
// CreateBooking
// ----------------------------------------------------

func TestCreateBooking_HappyPath(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	b, err := uc.Execute(context.Background(), CreateBookingInput{
		ServiceName: "Géllakk",
		Date:        "2026-09-14",
		Time:        "10:00",
		Name:        "  Kiss Anna ",
		Phone:       " +36 30  123   4567 ",
		Note:        "first visit",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if b.EndTime != "11:00" {
		t.Errorf("end time = %s, want 11:00 (start + duration)", b.EndTime)
	}
	if b.Status != "booked" {
		t.Errorf("status = %s, want booked", b.Status)
	}
	if b.Name != "Kiss Anna" {
		t.Errorf("name not trimmed: %q", b.Name)
	}
	if b.Phone != "+36 30 123 4567" {
		t.Errorf("phone not normalized: %q", b.Phone)
	}
	if len(repo.bookings) != 1 {
		t.Fatalf("expected 1 persisted booking, got %d", len(repo.bookings))
	}
}

func TestCreateBooking_MonotonicIDs(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	// Freeze the clock so both submissions land in the same millisecond.
	fixed := time.Date(2026, 9, 14, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	first, err := uc.Execute(context.Background(), CreateBookingInput{
		ServiceName: "Manikűr", Date: "2026-09-14", Time: "09:00",
		Name: "A", Phone: "1",
	})
	if err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	second, err := uc.Execute(context.Background(), CreateBookingInput{
		ServiceName: "Manikűr", Date: "2026-09-14", Time: "11:00",
		Name: "B", Phone: "2",
	})
	if err != nil {
		t.Fatalf("second booking failed: %v", err)
	}

	if second.ID <= first.ID {
		t.Errorf("ids not increasing: %d then %d", first.ID, second.ID)
	}
}

func TestCreateBooking_Validation(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	cases := []struct {
		name string
		in   CreateBookingInput
		code string
	}{
		{"empty name", CreateBookingInput{ServiceName: "Géllakk", Date: "2026-09-14", Time: "10:00", Phone: "1"}, "missing_name"},
		{"blank phone", CreateBookingInput{ServiceName: "Géllakk", Date: "2026-09-14", Time: "10:00", Name: "A", Phone: "   "}, "missing_phone"},
		{"unknown service", CreateBookingInput{ServiceName: "Pedikűr", Date: "2026-09-14", Time: "10:00", Name: "A", Phone: "1"}, "service_not_found"},
		{"bad time", CreateBookingInput{ServiceName: "Géllakk", Date: "2026-09-14", Time: "25:99", Name: "A", Phone: "1"}, "invalid_date_or_time"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), c.in)
			if !httperr.IsBusiness(err, c.code) {
				t.Errorf("error = %v, want business code %s", err, c.code)
			}
			if len(repo.bookings) != 0 {
				t.Fatal("validation failure must not write a row")
			}
		})
	}
}

func TestCreateBooking_OutsideWorkingHours(t *testing.T) {
	repo := newFakeRepo()
	uc := newCreateUC(repo)

	cases := []struct {
		name    string
		service string
		start   string
		wantErr bool
	}{
		{"before opening", "Géllakk", "03:00", true},
		{"runs past closing", "Géllakk", "17:45", true}, // 60 min ends 18:45
		{"ends exactly at closing", "Géllakk", "17:00", false},
		{"starts at opening", "Manikűr", "09:00", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), CreateBookingInput{
				ServiceName: c.service, Date: "2026-09-14", Time: c.start,
				Name: "A", Phone: "1",
			})
			if c.wantErr {
				if !httperr.IsBusiness(err, "outside_working_hours") {
					t.Errorf("error = %v, want outside_working_hours", err)
				}
			} else if err != nil {
				t.Errorf("booking at %s failed: %v", c.start, err)
			}
		})
	}
}

func TestCreateBooking_SlotTakenRecheck(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []models.Booking{
		{ID: 1, Date: "2026-09-14", StartTime: "10:00", EndTime: "11:00", Status: "booked"},
	}
	uc := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), CreateBookingInput{
		ServiceName: "Géllakk", Date: "2026-09-14", Time: "10:30",
		Name: "A", Phone: "1",
	})
	if !httperr.IsBusiness(err, "slot_taken") {
		t.Errorf("error = %v, want slot_taken", err)
	}

	// A cancelled row frees its interval.
	repo.bookings[0].Status = "cancelled"
	if _, err := uc.Execute(context.Background(), CreateBookingInput{
		ServiceName: "Géllakk", Date: "2026-09-14", Time: "10:30",
		Name: "A", Phone: "1",
	}); err != nil {
		t.Errorf("booking over a cancelled row failed: %v", err)
	}
}

// ----------------------------------------------------
// GetAvailability
// ----------------------------------------------------

func TestGetAvailability_SkipsCancelled(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []models.Booking{
		{ID: 1, Date: "2026-09-14", StartTime: "10:00", EndTime: "11:00", Status: "cancelled"},
		{ID: 2, Date: "2026-09-14", StartTime: "14:00", EndTime: "15:00", Status: "booked"},
		{ID: 3, Date: "2026-09-15", StartTime: "09:00", EndTime: "18:00", Status: "booked"},
	}
	uc := NewGetAvailability(repo, testHours)

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	slots, err := uc.Execute(context.Background(), day, "Géllakk")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	var has10, has14 bool
	for _, s := range slots {
		if s.Start == "10:00" {
			has10 = true
		}
		if s.Start == "14:00" {
			has14 = true
		}
	}
	if !has10 {
		t.Error("10:00 should be free, the 10:00 row is cancelled")
	}
	if has14 {
		t.Error("14:00 should be blocked by the live booking")
	}
}

func TestGetAvailability_UnknownService(t *testing.T) {
	uc := NewGetAvailability(newFakeRepo(), testHours)

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), day, "Pedikűr")
	if !httperr.IsBusiness(err, "service_not_found") {
		t.Errorf("error = %v, want service_not_found", err)
	}
}

// ----------------------------------------------------
// ListBookings
// ----------------------------------------------------

func TestListBookings_SortedByDateThenStart(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []models.Booking{
		{ID: 3, Date: "2026-09-15", StartTime: "09:00"},
		{ID: 1, Date: "2026-09-14", StartTime: "14:00"},
		{ID: 2, Date: "2026-09-14", StartTime: "10:00"},
	}

	out, err := NewListBookings(repo).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	wantOrder := []int64{2, 1, 3}
	for i, id := range wantOrder {
		if out[i].ID != id {
			t.Fatalf("position %d has id %d, want %d (full order %v)", i, out[i].ID, id, out)
		}
	}
}

// ----------------------------------------------------
// UpdateBookingStatus
// ----------------------------------------------------

func TestUpdateBookingStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.bookings = []models.Booking{
		{ID: 42, Date: "2026-09-14", StartTime: "10:00", Status: "booked"},
	}
	uc := NewUpdateBookingStatus(repo, audit.NewDispatcher(zap.NewNop()))

	if err := uc.Execute(context.Background(), 42, "done"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if repo.bookings[0].Status != "done" {
		t.Errorf("status = %s, want done", repo.bookings[0].Status)
	}

	if err := uc.Execute(context.Background(), 42, "deleted"); !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("error = %v, want invalid_status", err)
	}

	if err := uc.Execute(context.Background(), 7, "cancelled"); !httperr.IsBusiness(err, "booking_not_found") {
		t.Errorf("error = %v, want booking_not_found", err)
	}
}

// ----------------------------------------------------
// AddService
// ----------------------------------------------------

func TestAddService(t *testing.T) {
	repo := newFakeRepo()
	uc := NewAddService(repo, audit.NewDispatcher(zap.NewNop()))

	svc, err := uc.Execute(context.Background(), AddServiceInput{
		Name: " Pedikűr ", DurationMin: 50, Price: "7000",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if svc.Name != "Pedikűr" {
		t.Errorf("name not trimmed: %q", svc.Name)
	}
	if len(repo.services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(repo.services))
	}

	if _, err := uc.Execute(context.Background(), AddServiceInput{Name: "  ", DurationMin: 60}); !httperr.IsBusiness(err, "missing_service_name") {
		t.Errorf("error = %v, want missing_service_name", err)
	}
	if _, err := uc.Execute(context.Background(), AddServiceInput{Name: "X", DurationMin: 2}); !httperr.IsBusiness(err, "invalid_duration") {
		t.Errorf("error = %v, want invalid_duration", err)
	}
}
