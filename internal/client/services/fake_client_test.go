package services

import (
	"context"

	"github.com/easyapt/easyapt-go/internal/client/api"
	"github.com/easyapt/easyapt-go/internal/client/models"
)

// fakeClient implements api.Client for unit tests. Each method returns the
// configured value/error and records its last arguments.
type fakeClient struct {
	RegisterRet *models.User
	RegisterErr error

	LoginRet *models.Token
	LoginErr error

	MeRet *models.User
	MeErr error

	GetProfileRet *models.Profile
	GetProfileErr error

	SaveProfileRet *models.Profile
	SaveProfileErr error

	CreateProviderRet *models.Provider
	CreateProviderErr error

	ListProvidersRet []models.Provider
	ListProvidersErr error

	SearchProvidersRet []models.Provider
	SearchProvidersErr error

	ProviderAppointmentsRet []models.Appointment
	ProviderAppointmentsErr error

	BookRet *models.Appointment
	BookErr error

	MyAppointmentsRet []models.Appointment
	MyAppointmentsErr error

	RescheduleRet *models.Appointment
	RescheduleErr error

	CancelErr error

	DashboardRet []models.ProviderAppointment
	DashboardErr error

	PingErr error

	// captured arguments
	LastRegisterEmail string
	LastRegisterRole  string
	LastLoginEmail    string
	LastLoginPassword string
	LastSavedProfile  models.ProfileUpdate
	LastBooking       models.BookingRequest
	LastSearchQuery   string
	LastProviderID    int64
	LastCancelID      int64
	LastRescheduleID  int64
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) Register(ctx context.Context, email, password, role string) (*models.User, error) {
	f.LastRegisterEmail = email
	f.LastRegisterRole = role
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (*models.Token, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Me(ctx context.Context) (*models.User, error) {
	return f.MeRet, f.MeErr
}

func (f *fakeClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	return f.GetProfileRet, f.GetProfileErr
}

func (f *fakeClient) SaveProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	f.LastSavedProfile = update
	return f.SaveProfileRet, f.SaveProfileErr
}

func (f *fakeClient) CreateProvider(ctx context.Context, provider models.ProviderCreate) (*models.Provider, error) {
	return f.CreateProviderRet, f.CreateProviderErr
}

func (f *fakeClient) ListProviders(ctx context.Context) ([]models.Provider, error) {
	return f.ListProvidersRet, f.ListProvidersErr
}

func (f *fakeClient) SearchProviders(ctx context.Context, query string) ([]models.Provider, error) {
	f.LastSearchQuery = query
	return f.SearchProvidersRet, f.SearchProvidersErr
}

func (f *fakeClient) ProviderAppointments(ctx context.Context, providerID int64) ([]models.Appointment, error) {
	f.LastProviderID = providerID
	return f.ProviderAppointmentsRet, f.ProviderAppointmentsErr
}

func (f *fakeClient) BookAppointment(ctx context.Context, booking models.BookingRequest) (*models.Appointment, error) {
	f.LastBooking = booking
	return f.BookRet, f.BookErr
}

func (f *fakeClient) MyAppointments(ctx context.Context) ([]models.Appointment, error) {
	return f.MyAppointmentsRet, f.MyAppointmentsErr
}

func (f *fakeClient) RescheduleAppointment(ctx context.Context, id int64, start, end models.Time) (*models.Appointment, error) {
	f.LastRescheduleID = id
	return f.RescheduleRet, f.RescheduleErr
}

func (f *fakeClient) CancelAppointment(ctx context.Context, id int64) error {
	f.LastCancelID = id
	return f.CancelErr
}

func (f *fakeClient) ProviderDashboard(ctx context.Context) ([]models.ProviderAppointment, error) {
	return f.DashboardRet, f.DashboardErr
}

func (f *fakeClient) Ping(ctx context.Context) error {
	return f.PingErr
}
