package booking

import (
	"fmt"
	"time"
)

// WorkingHours bounds slot generation for every day of the week. It is an
// immutable value built from configuration, not ambient state.
type WorkingHours struct {
	Open              string // HH:MM
	Close             string // HH:MM
	SlotMinutes       int
	MinVisibleMinutes int
}

func (wh WorkingHours) Validate() error {
	open, err := time.Parse("15:04", wh.Open)
	if err != nil {
		return fmt.Errorf("invalid opening time %q: %w", wh.Open, err)
	}
	close, err := time.Parse("15:04", wh.Close)
	if err != nil {
		return fmt.Errorf("invalid closing time %q: %w", wh.Close, err)
	}
	if !open.Before(close) {
		return fmt.Errorf("opening time %s is not before closing time %s", wh.Open, wh.Close)
	}
	if wh.SlotMinutes <= 0 {
		return fmt.Errorf("slot step must be positive, got %d", wh.SlotMinutes)
	}
	if wh.MinVisibleMinutes < 0 {
		return fmt.Errorf("visibility guard must not be negative, got %d", wh.MinVisibleMinutes)
	}
	return nil
}

// Window anchors the working hours on a calendar day.
func (wh WorkingHours) Window(day time.Time) (time.Time, time.Time) {
	return atTime(day, wh.Open), atTime(day, wh.Close)
}

func atTime(day time.Time, hm string) time.Time {
	t, _ := time.Parse("15:04", hm)
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	)
}
