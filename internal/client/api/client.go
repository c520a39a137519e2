package api

import (
	"context"

	"github.com/easyapt/easyapt-go/internal/client/models"
)

// Client is the typed contract for the EasyApt backend. Services and the
// CLI depend on this interface so tests can substitute fakes.
type Client interface {
	// Auth.
	Register(ctx context.Context, email, password, role string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.Token, error)
	Me(ctx context.Context) (*models.User, error)

	// Profile.
	GetProfile(ctx context.Context) (*models.Profile, error)
	SaveProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error)

	// Providers.
	CreateProvider(ctx context.Context, provider models.ProviderCreate) (*models.Provider, error)
	ListProviders(ctx context.Context) ([]models.Provider, error)
	SearchProviders(ctx context.Context, query string) ([]models.Provider, error)
	ProviderAppointments(ctx context.Context, providerID int64) ([]models.Appointment, error)

	// Appointments.
	BookAppointment(ctx context.Context, booking models.BookingRequest) (*models.Appointment, error)
	MyAppointments(ctx context.Context) ([]models.Appointment, error)
	RescheduleAppointment(ctx context.Context, id int64, start, end models.Time) (*models.Appointment, error)
	CancelAppointment(ctx context.Context, id int64) error
	ProviderDashboard(ctx context.Context) ([]models.ProviderAppointment, error)

	// Ping probes server liveness via the health endpoint.
	Ping(ctx context.Context) error
}
