package sheets

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/salonic/salon-scheduler/internal/config"
	domain "github.com/salonic/salon-scheduler/internal/domain/booking"
	"github.com/salonic/salon-scheduler/internal/httperr"
	"github.com/salonic/salon-scheduler/internal/models"
)

// Store implements the booking repository on a Google Sheets workbook.
// Reads fetch the whole sheet; filtering happens in memory.
type Store struct {
	srv           *sheets.Service
	log           *zap.Logger
	spreadsheetID string
	bookingsSheet string
	servicesSheet string
}

func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Store, error) {
	creds, err := LoadCredentials(cfg)
	if err != nil {
		return nil, err
	}

	jwtCfg, err := google.JWTConfigFromJSON(creds, sheets.SpreadsheetsScope, sheets.DriveScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}

	s := &Store{
		srv:           srv,
		log:           log.Named("sheets"),
		spreadsheetID: cfg.SpreadsheetID,
		bookingsSheet: cfg.BookingsSheet,
		servicesSheet: cfg.ServicesSheet,
	}

	if err := s.ensureWorkbook(ctx, cfg.SpreadsheetTitle); err != nil {
		return nil, err
	}
	return s, nil
}

// SpreadsheetID reports the workbook backing the store, useful after a
// fresh workbook was auto-created.
func (s *Store) SpreadsheetID() string {
	return s.spreadsheetID
}

// --------------------------------------------------
// Workbook / sheet initialization
// --------------------------------------------------

func (s *Store) ensureWorkbook(ctx context.Context, title string) error {
	if s.spreadsheetID == "" {
		created, err := s.srv.Spreadsheets.Create(&sheets.Spreadsheet{
			Properties: &sheets.SpreadsheetProperties{Title: title},
		}).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("unable to create workbook %q: %w", title, err)
		}
		s.spreadsheetID = created.SpreadsheetId
		s.log.Info("created workbook",
			zap.String("title", title),
			zap.String("spreadsheet_id", s.spreadsheetID))
	}

	meta, err := s.srv.Spreadsheets.Get(s.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to open workbook: %w", err)
	}

	existing := make(map[string]bool, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		if sh.Properties != nil {
			existing[sh.Properties.Title] = true
		}
	}

	if !existing[s.bookingsSheet] {
		if err := s.addSheet(ctx, s.bookingsSheet); err != nil {
			return err
		}
		header := make([]interface{}, len(models.BookingColumns))
		for i, c := range models.BookingColumns {
			header[i] = c
		}
		if err := s.appendRows(ctx, s.bookingsSheet, [][]interface{}{header}); err != nil {
			return err
		}
	}

	if !existing[s.servicesSheet] {
		if err := s.addSheet(ctx, s.servicesSheet); err != nil {
			return err
		}
		rows := [][]interface{}{{"service", "duration_min", "price"}}
		for i := range models.DefaultServices {
			rows = append(rows, models.DefaultServices[i].Row())
		}
		if err := s.appendRows(ctx, s.servicesSheet, rows); err != nil {
			return err
		}
		s.log.Info("seeded default service catalog",
			zap.Int("services", len(models.DefaultServices)))
	}

	return nil
}

func (s *Store) addSheet(ctx context.Context, title string) error {
	_, err := s.srv.Spreadsheets.BatchUpdate(s.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: title},
			},
		}},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to add sheet %q: %w", title, err)
	}
	return nil
}

func (s *Store) appendRows(ctx context.Context, sheet string, rows [][]interface{}) error {
	_, err := s.srv.Spreadsheets.Values.Append(
		s.spreadsheetID,
		sheet+"!A:A",
		&sheets.ValueRange{Values: rows},
	).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("unable to append to %s: %w", sheet, err)
	}
	return nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (s *Store) ListServices(ctx context.Context) ([]models.Service, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(
		s.spreadsheetID,
		s.servicesSheet+"!A2:C",
	).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read services: %w", err)
	}

	services := make([]models.Service, 0, len(resp.Values))
	for _, row := range resp.Values {
		svc, err := models.ServiceFromRow(row)
		if err != nil {
			continue
		}
		services = append(services, *svc)
	}
	return services, nil
}

func (s *Store) AppendService(ctx context.Context, svc *models.Service) error {
	return s.appendRows(ctx, s.servicesSheet, [][]interface{}{svc.Row()})
}

// --------------------------------------------------
// Bookings
// --------------------------------------------------

func (s *Store) ListBookings(ctx context.Context) ([]models.Booking, error) {
	resp, err := s.srv.Spreadsheets.Values.Get(
		s.spreadsheetID,
		s.bookingsSheet+"!A2:K",
	).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to read bookings: %w", err)
	}

	bookings := make([]models.Booking, 0, len(resp.Values))
	for i, row := range resp.Values {
		b, err := models.BookingFromRow(row)
		if err != nil {
			s.log.Debug("skipping unreadable booking row",
				zap.Int("row", i+2), zap.Error(err))
			continue
		}
		bookings = append(bookings, *b)
	}
	return bookings, nil
}

func (s *Store) ListBookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	all, err := s.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	day := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if b.Date == date {
			day = append(day, b)
		}
	}
	return day, nil
}

func (s *Store) AppendBooking(ctx context.Context, b *models.Booking) error {
	return s.appendRows(ctx, s.bookingsSheet, [][]interface{}{b.Row()})
}

func (s *Store) UpdateBookingStatus(ctx context.Context, id int64, status domain.Status) error {
	resp, err := s.srv.Spreadsheets.Values.Get(
		s.spreadsheetID,
		s.bookingsSheet+"!A:A",
	).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to read booking ids: %w", err)
	}

	want := strconv.FormatInt(id, 10)
	rowNum := 0
	for i, row := range resp.Values {
		if i == 0 {
			continue // header
		}
		if len(row) > 0 && fmt.Sprint(row[0]) == want {
			rowNum = i + 1
			break
		}
	}
	if rowNum == 0 {
		return httperr.ErrBusiness("booking_not_found")
	}

	cell := fmt.Sprintf("%s!%s%d", s.bookingsSheet, columnLetter(models.StatusColumn), rowNum)
	_, err = s.srv.Spreadsheets.Values.Update(
		s.spreadsheetID,
		cell,
		&sheets.ValueRange{Values: [][]interface{}{{string(status)}}},
	).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("unable to update booking %d: %w", id, err)
	}
	return nil
}

// columnLetter converts a 1-based column number to its A1-notation
// letters (1 -> A, 26 -> Z, 27 -> AA).
func columnLetter(n int) string {
	var letters []byte
	for n > 0 {
		n--
		letters = append([]byte{byte('A' + n%26)}, letters...)
		n /= 26
	}
	return string(letters)
}
