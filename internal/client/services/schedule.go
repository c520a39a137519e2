package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/easyapt/easyapt-go/internal/client/api"
	"github.com/easyapt/easyapt-go/internal/client/models"
)

var ErrInvalidTimeRange = errors.New("start time must be before end time")

// ScheduleService covers providers and appointments: discovery, booking,
// rescheduling and cancellation.
type ScheduleService interface {
	Providers(ctx context.Context) ([]models.Provider, error)
	SearchProviders(ctx context.Context, query string) ([]models.Provider, error)
	CreateProvider(ctx context.Context, provider models.ProviderCreate) (*models.Provider, error)

	// TakenSlots lists upcoming appointments of a provider, used to show
	// which slots are unavailable before booking.
	TakenSlots(ctx context.Context, providerID int64) ([]models.Appointment, error)

	Book(ctx context.Context, providerID int64, start, end time.Time, reason string) (*models.Appointment, error)
	My(ctx context.Context) ([]models.Appointment, error)
	Reschedule(ctx context.Context, id int64, start, end time.Time) (*models.Appointment, error)
	Cancel(ctx context.Context, id int64) error

	// Dashboard lists upcoming appointments for the logged-in provider.
	Dashboard(ctx context.Context) ([]models.ProviderAppointment, error)
}

type scheduleService struct {
	client api.Client
}

func NewScheduleService(client api.Client) ScheduleService {
	return &scheduleService{client: client}
}

func (s *scheduleService) Providers(ctx context.Context) ([]models.Provider, error) {
	return s.client.ListProviders(ctx)
}

func (s *scheduleService) SearchProviders(ctx context.Context, query string) ([]models.Provider, error) {
	return s.client.SearchProviders(ctx, query)
}

func (s *scheduleService) CreateProvider(ctx context.Context, provider models.ProviderCreate) (*models.Provider, error) {
	return s.client.CreateProvider(ctx, provider)
}

func (s *scheduleService) TakenSlots(ctx context.Context, providerID int64) ([]models.Appointment, error) {
	return s.client.ProviderAppointments(ctx, providerID)
}

// Book validates the time range locally before calling the server; the
// server applies the same rule plus overlap checks.
func (s *scheduleService) Book(ctx context.Context, providerID int64, start, end time.Time, reason string) (*models.Appointment, error) {
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}
	appt, err := s.client.BookAppointment(ctx, models.BookingRequest{
		ProviderID: providerID,
		StartTime:  models.NewTime(start),
		EndTime:    models.NewTime(end),
		Reason:     reason,
	})
	if err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}
	return appt, nil
}

func (s *scheduleService) My(ctx context.Context) ([]models.Appointment, error) {
	return s.client.MyAppointments(ctx)
}

func (s *scheduleService) Reschedule(ctx context.Context, id int64, start, end time.Time) (*models.Appointment, error) {
	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}
	appt, err := s.client.RescheduleAppointment(ctx, id, models.NewTime(start), models.NewTime(end))
	if err != nil {
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}
	return appt, nil
}

func (s *scheduleService) Cancel(ctx context.Context, id int64) error {
	return s.client.CancelAppointment(ctx, id)
}

func (s *scheduleService) Dashboard(ctx context.Context) ([]models.ProviderAppointment, error) {
	return s.client.ProviderDashboard(ctx)
}
