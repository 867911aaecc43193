package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// BookingColumns is the column order of the Bookings sheet. Row encoding
// and decoding below must stay in sync with it.
var BookingColumns = []string{
	"id", "date", "start_time", "end_time", "service",
	"duration_min", "name", "phone", "status", "note", "created_at",
}

// StatusColumn is the 1-based index of the status column, used for
// single-cell updates.
const StatusColumn = 9

type Booking struct {
	ID          int64     `json:"id"`
	Date        string    `json:"date"`       // YYYY-MM-DD
	StartTime   string    `json:"start_time"` // HH:MM
	EndTime     string    `json:"end_time"`   // HH:MM
	Service     string    `json:"service"`
	DurationMin int       `json:"duration_min"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Status      string    `json:"status"`
	Note        string    `json:"note"`
	CreatedAt   time.Time `json:"created_at"`
}

func (b *Booking) Row() []interface{} {
	return []interface{}{
		strconv.FormatInt(b.ID, 10),
		b.Date,
		b.StartTime,
		b.EndTime,
		b.Service,
		strconv.Itoa(b.DurationMin),
		b.Name,
		b.Phone,
		b.Status,
		b.Note,
		b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// BookingFromRow decodes one sheet row. Rows are hand-editable, so every
// cell is read leniently; only a missing id makes the row unusable.
func BookingFromRow(row []interface{}) (*Booking, error) {
	id, err := strconv.ParseInt(cellString(row, 0), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid booking id %q", cellString(row, 0))
	}

	durationMin, _ := strconv.Atoi(cellString(row, 5))
	createdAt, _ := time.Parse(time.RFC3339, cellString(row, 10))

	return &Booking{
		ID:          id,
		Date:        cellString(row, 1),
		StartTime:   cellString(row, 2),
		EndTime:     cellString(row, 3),
		Service:     cellString(row, 4),
		DurationMin: durationMin,
		Name:        cellString(row, 6),
		Phone:       cellString(row, 7),
		Status:      cellString(row, 8),
		Note:        cellString(row, 9),
		CreatedAt:   createdAt,
	}, nil
}

func cellString(row []interface{}, i int) string {
	if i >= len(row) || row[i] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[i]))
}
