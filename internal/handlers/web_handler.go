package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonic/salon-scheduler/internal/config"
)

type WebHandler struct {
	cfg *config.Config
}

func NewWebHandler(cfg *config.Config) *WebHandler {
	return &WebHandler{cfg: cfg}
}

func (h *WebHandler) BookingPage(c *gin.Context) {
	c.HTML(http.StatusOK, "booking.html", gin.H{
		"OpenTime":  h.cfg.OpenTime,
		"CloseTime": h.cfg.CloseTime,
	})
}

func (h *WebHandler) AdminPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{})
}
