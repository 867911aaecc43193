package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonic/salon-scheduler/internal/audit"
	"github.com/salonic/salon-scheduler/internal/config"
	domain "github.com/salonic/salon-scheduler/internal/domain/booking"
	"github.com/salonic/salon-scheduler/internal/handlers"
	"github.com/salonic/salon-scheduler/internal/middleware"
	"github.com/salonic/salon-scheduler/internal/timezone"
	ucBooking "github.com/salonic/salon-scheduler/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, repo domain.Repository, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	auditDispatcher := audit.NewDispatcher(log)

	hours := domain.WorkingHours{
		Open:              cfg.OpenTime,
		Close:             cfg.CloseTime,
		SlotMinutes:       cfg.SlotMinutes,
		MinVisibleMinutes: cfg.MinVisibleMinutes,
	}
	loc := timezone.Location(cfg.Timezone)

	// ======================================================
	// USE CASES
	// ======================================================
	listServicesUC := ucBooking.NewListServices(repo)
	getAvailabilityUC := ucBooking.NewGetAvailability(repo, hours)
	createBookingUC := ucBooking.NewCreateBooking(repo, auditDispatcher, hours, loc)

	listBookingsUC := ucBooking.NewListBookings(repo)
	updateStatusUC := ucBooking.NewUpdateBookingStatus(repo, auditDispatcher)
	addServiceUC := ucBooking.NewAddService(repo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		listServicesUC,
		getAvailabilityUC,
		createBookingUC,
		cfg.Timezone,
	)

	adminHandler := handlers.NewAdminHandler(
		cfg,
		listBookingsUC,
		updateStatusUC,
		listServicesUC,
		addServiceUC,
	)

	webHandler := handlers.NewWebHandler(cfg)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.BookingPage)
	r.GET("/admin", webHandler.AdminPage)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.POST("/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		adminAPI := api.Group("/admin")
		adminAPI.POST("/login", adminHandler.Login)

		secured := adminAPI.Group("/")
		secured.Use(middleware.AdminAuth(cfg))
		{
			secured.GET("/bookings", adminHandler.ListBookings)
			secured.PATCH("/bookings/:id/status", adminHandler.UpdateBookingStatus)
			secured.GET("/services", adminHandler.ListServices)
			secured.POST("/services", adminHandler.AddService)
		}
	}
}
