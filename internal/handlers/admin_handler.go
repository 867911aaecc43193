package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/salonic/salon-scheduler/internal/config"
	"github.com/salonic/salon-scheduler/internal/httperr"
	"github.com/salonic/salon-scheduler/internal/httpresp"
	usecase "github.com/salonic/salon-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type AdminHandler struct {
	cfg *config.Config

	listBookings *usecase.ListBookings
	updateStatus *usecase.UpdateBookingStatus
	listServices *usecase.ListServices
	addService   *usecase.AddService
}

func NewAdminHandler(
	cfg *config.Config,
	listBookings *usecase.ListBookings,
	updateStatus *usecase.UpdateBookingStatus,
	listServices *usecase.ListServices,
	addService *usecase.AddService,
) *AdminHandler {
	return &AdminHandler{
		cfg:          cfg,
		listBookings: listBookings,
		updateStatus: updateStatus,
		listServices: listServices,
		addService:   addService,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddServiceRequest struct {
	Service     string `json:"service"`
	DurationMin int    `json:"duration_min"`
	Price       string `json:"price"`
}

////////////////////////////////////////////////////////
// LOGIN
////////////////////////////////////////////////////////

// Login checks the shared admin secret. Plaintext comparison, no lockout,
// no rate limiting; this gate keeps honest guests out, nothing more.
func (h *AdminHandler) Login(c *gin.Context) {
	if h.cfg.AdminPassword == "" {
		httperr.Unavailable(c, "admin_disabled", "No admin password is configured.")
		return
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Password is required.")
		return
	}

	if req.Password != h.cfg.AdminPassword {
		httperr.Unauthorized(c, "wrong_password", "Wrong password.")
		return
	}

	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(12 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		httperr.Internal(c, "token_failed", "Could not create a session token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}

////////////////////////////////////////////////////////
// BOOKINGS
////////////////////////////////////////////////////////

func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.listBookings.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Could not load bookings.")
		return
	}

	httpresp.List(c, bookings)
}

func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid booking id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	err = h.updateStatus.Execute(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.BadRequest(c, "invalid_status", "Status must be booked, cancelled or done.")
		case httperr.IsBusiness(err, "booking_not_found"):
			httperr.NotFound(c, "booking_not_found", "No booking with that id.")
		default:
			httperr.Internal(c, "status_update_failed", "Could not update the booking.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *AdminHandler) ListServices(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	httpresp.List(c, services)
}

func (h *AdminHandler) AddService(c *gin.Context) {
	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	svc, err := h.addService.Execute(c.Request.Context(), usecase.AddServiceInput{
		Name:        req.Service,
		DurationMin: req.DurationMin,
		Price:       req.Price,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "missing_service_name"):
			httperr.BadRequest(c, "missing_service_name", "The service needs a name.")
		case httperr.IsBusiness(err, "invalid_duration"):
			httperr.BadRequest(c, "invalid_duration", "Duration must be between 5 and 480 minutes.")
		default:
			httperr.Internal(c, "service_add_failed", "Could not save the service.")
		}
		return
	}

	c.JSON(http.StatusCreated, svc)
}
