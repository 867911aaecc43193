package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salonic/salon-scheduler/internal/httperr"
	"github.com/salonic/salon-scheduler/internal/httpresp"
	"github.com/salonic/salon-scheduler/internal/timezone"
	usecase "github.com/salonic/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	listServices    *usecase.ListServices
	getAvailability *usecase.GetAvailability
	createBooking   *usecase.CreateBooking
	tz              string
}

func NewPublicHandler(
	listServices *usecase.ListServices,
	getAvailability *usecase.GetAvailability,
	createBooking *usecase.CreateBooking,
	tz string,
) *PublicHandler {
	return &PublicHandler{
		listServices:    listServices,
		getAvailability: getAvailability,
		createBooking:   createBooking,
		tz:              tz,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	Service string `json:"service" binding:"required"`
	Date    string `json:"date" binding:"required"` // YYYY-MM-DD
	Time    string `json:"time" binding:"required"` // HH:MM
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Note    string `json:"note"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load the service catalog.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	serviceName := c.Query("service")

	if dateStr == "" || serviceName == "" {
		httperr.BadRequest(c, "missing_params", "Date and service are required.")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(h.tz))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	slots, err := h.getAvailability.Execute(c.Request.Context(), date, serviceName)
	if err != nil {
		if httperr.IsBusiness(err, "service_not_found") {
			httperr.BadRequest(c, "service_not_found", "Unknown service.")
			return
		}
		httperr.Internal(c, "availability_failed", "Could not compute free slots.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.createBooking.Execute(c.Request.Context(), usecase.CreateBookingInput{
		ServiceName: req.Service,
		Date:        req.Date,
		Time:        req.Time,
		Name:        req.Name,
		Phone:       req.Phone,
		Note:        req.Note,
	})

	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_name"):
			httperr.BadRequest(c, "missing_name", "Please give your name.")
		case httperr.IsBusiness(err, "missing_phone"):
			httperr.BadRequest(c, "missing_phone", "Please give your phone number.")
		case httperr.IsBusiness(err, "service_not_found"):
			httperr.BadRequest(c, "service_not_found", "Unknown service.")
		case httperr.IsBusiness(err, "invalid_date_or_time"):
			httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		case httperr.IsBusiness(err, "outside_working_hours"):
			httperr.BadRequest(c, "outside_working_hours", "That time is outside opening hours.")
		case httperr.IsBusiness(err, "slot_taken"):
			httperr.Conflict(c, "slot_taken", "That slot has just been booked, please pick another.")
		default:
			httperr.Internal(c, "booking_failed", "Could not save the booking.")
		}
		return
	}

	c.JSON(http.StatusCreated, b)
}
