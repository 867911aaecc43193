package booking

import (
	"context"
	"strings"

	"github.com/salonic/salon-scheduler/internal/audit"
	domain "github.com/salonic/salon-scheduler/internal/domain/booking"
	"github.com/salonic/salon-scheduler/internal/httperr"
	"github.com/salonic/salon-scheduler/internal/models"
)

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx)
}

// ======================================================
// ADD SERVICE (admin)
// ======================================================

type AddServiceInput struct {
	Name        string
	DurationMin int
	Price       string
}

type AddService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddService(repo domain.Repository, audit *audit.Dispatcher) *AddService {
	return &AddService{repo: repo, audit: audit}
}

func (uc *AddService) Execute(ctx context.Context, in AddServiceInput) (*models.Service, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, httperr.ErrBusiness("missing_service_name")
	}
	if in.DurationMin < 5 || in.DurationMin > 480 {
		return nil, httperr.ErrBusiness("invalid_duration")
	}

	svc := &models.Service{
		Name:        name,
		DurationMin: in.DurationMin,
		Price:       strings.TrimSpace(in.Price),
	}

	if err := uc.repo.AppendService(ctx, svc); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "service_added",
		Entity:   "service",
		Metadata: map[string]string{"service": svc.Name},
	})

	return svc, nil
}
