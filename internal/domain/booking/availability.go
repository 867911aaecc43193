package booking

import (
	"time"

	"github.com/salonic/salon-scheduler/internal/models"
)

type AvailabilityInput struct {
	Date        time.Time
	ServiceName string
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ComputeAvailability returns the bookable start times for a day, in
// chronological order.
//
// Candidates step from opening to closing time in SlotMinutes increments;
// generation stops once fewer than MinVisibleMinutes remain before closing,
// regardless of the chosen service's duration. A candidate survives when it
// ends by closing time (ending exactly at close is fine) and its half-open
// interval overlaps no existing booking: [a,b) and [c,d) overlap iff
// a < d && b > c, so back-to-back bookings do not collide.
//
// Bookings whose stored times do not parse are skipped entirely, they
// block nothing.
func ComputeAvailability(
	day time.Time,
	wh WorkingHours,
	durationMin int,
	existing []models.Booking,
) []TimeSlot {

	if durationMin <= 0 {
		return []TimeSlot{}
	}

	open, close := wh.Window(day)
	duration := time.Duration(durationMin) * time.Minute
	step := time.Duration(wh.SlotMinutes) * time.Minute
	guard := time.Duration(wh.MinVisibleMinutes) * time.Minute

	type interval struct {
		start, end time.Time
	}

	busy := make([]interval, 0, len(existing))
	for _, b := range existing {
		start, err := time.Parse("15:04", b.StartTime)
		if err != nil {
			continue
		}
		end, err := time.Parse("15:04", b.EndTime)
		if err != nil {
			continue
		}
		busy = append(busy, interval{
			start: onDay(day, start),
			end:   onDay(day, end),
		})
	}

	slots := []TimeSlot{}
	for cur := open; !cur.Add(guard).After(close); cur = cur.Add(step) {
		end := cur.Add(duration)
		if end.After(close) {
			continue
		}

		conflict := false
		for _, iv := range busy {
			if cur.Before(iv.end) && end.After(iv.start) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: cur.Format("15:04"),
			End:   end.Format("15:04"),
		})
	}

	return slots
}

func onDay(day, t time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	)
}
