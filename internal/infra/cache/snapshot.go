package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/salonic/salon-scheduler/internal/config"
	domain "github.com/salonic/salon-scheduler/internal/domain/booking"
	"github.com/salonic/salon-scheduler/internal/models"
)

const (
	bookingsKey = "salonic:bookings"
	servicesKey = "salonic:services"

	// Sheet reads were always cached for 30 seconds; the admin panel
	// tolerates slightly stale rows and guests re-read on every page.
	snapshotTTL = 30 * time.Second
)

// Repository decorates the sheets store with a short-lived Redis snapshot
// of full-sheet reads. Cache failures are logged and ignored; the store
// remains the source of truth.
type Repository struct {
	inner domain.Repository
	rdb   *redis.Client
	log   *zap.Logger
}

func Wrap(inner domain.Repository, cfg *config.Config, log *zap.Logger) *Repository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	return &Repository{
		inner: inner,
		rdb:   rdb,
		log:   log.Named("cache"),
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *Repository) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var cached []models.Booking
	if r.fetch(ctx, bookingsKey, &cached) {
		return cached, nil
	}

	bookings, err := r.inner.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	r.put(ctx, bookingsKey, bookings)
	return bookings, nil
}

func (r *Repository) ListBookingsByDate(ctx context.Context, date string) ([]models.Booking, error) {
	all, err := r.ListBookings(ctx)
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

func (r *Repository) ListServices(ctx context.Context) ([]models.Service, error) {
	var cached []models.Service
	if r.fetch(ctx, servicesKey, &cached) {
		return cached, nil
	}

	services, err := r.inner.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	r.put(ctx, servicesKey, services)
	return services, nil
}

// --------------------------------------------------
// Writes invalidate the snapshot they touch.
// --------------------------------------------------

func (r *Repository) AppendBooking(ctx context.Context, b *models.Booking) error {
	if err := r.inner.AppendBooking(ctx, b); err != nil {
		return err
	}
	r.invalidate(ctx, bookingsKey)
	return nil
}

func (r *Repository) UpdateBookingStatus(ctx context.Context, id int64, status domain.Status) error {
	if err := r.inner.UpdateBookingStatus(ctx, id, status); err != nil {
		return err
	}
	r.invalidate(ctx, bookingsKey)
	return nil
}

func (r *Repository) AppendService(ctx context.Context, svc *models.Service) error {
	if err := r.inner.AppendService(ctx, svc); err != nil {
		return err
	}
	r.invalidate(ctx, servicesKey)
	return nil
}

// --------------------------------------------------
// Plumbing
// --------------------------------------------------

func (r *Repository) fetch(ctx context.Context, key string, out any) bool {
	raw, err := r.rdb.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		r.log.Warn("cache entry unreadable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (r *Repository) put(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, key, raw, snapshotTTL).Err(); err != nil {
		r.log.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Repository) invalidate(ctx context.Context, key string) {
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		r.log.Warn("cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
