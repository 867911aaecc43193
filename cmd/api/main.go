package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/salonic/salon-scheduler/internal/config"
	domain "github.com/salonic/salon-scheduler/internal/domain/booking"
	"github.com/salonic/salon-scheduler/internal/infra/cache"
	"github.com/salonic/salon-scheduler/internal/infra/sheets"
	"github.com/salonic/salon-scheduler/internal/logger"
	"github.com/salonic/salon-scheduler/internal/routes"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.Env)
	defer log.Sync()

	hours := domain.WorkingHours{
		Open:              cfg.OpenTime,
		Close:             cfg.CloseTime,
		SlotMinutes:       cfg.SlotMinutes,
		MinVisibleMinutes: cfg.MinVisibleMinutes,
	}
	if err := hours.Validate(); err != nil {
		log.Fatal("invalid working hours configuration", zap.Error(err))
	}

	ctx := context.Background()

	store, err := sheets.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to connect to the workbook", zap.Error(err))
	}
	log.Info("workbook ready", zap.String("spreadsheet_id", store.SpreadsheetID()))

	var repo domain.Repository = store
	if cfg.RedisAddr != "" {
		cached := cache.Wrap(store, cfg, log)
		if err := cached.Ping(ctx); err != nil {
			log.Warn("redis unreachable, running without the snapshot cache", zap.Error(err))
		} else {
			repo = cached
			log.Info("snapshot cache enabled", zap.String("addr", cfg.RedisAddr))
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, repo, cfg, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
