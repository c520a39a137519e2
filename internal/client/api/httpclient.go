package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/easyapt/easyapt-go/internal/client/models"
)

// HTTPClient implements Client on top of the Gateway. Every method is a
// thin wrapper: build the request, send it through Do, decode the result.
type HTTPClient struct {
	gw *Gateway
}

func NewHTTPClient(gw *Gateway) *HTTPClient {
	return &HTTPClient{gw: gw}
}

// Gateway exposes the underlying gateway for callers that need raw access.
func (c *HTTPClient) Gateway() *Gateway {
	return c.gw
}

// getJSON issues a GET and decodes the structured payload into out.
func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	res, err := c.gw.Do(ctx, Request{Path: path})
	if err != nil {
		return err
	}
	return res.Decode(out)
}

// sendJSON marshals body, issues the call, and decodes into out unless out
// is nil.
func (c *HTTPClient) sendJSON(ctx context.Context, method, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request body: %w", err)
	}
	res, err := c.gw.Do(ctx, Request{Method: method, Path: path, Body: bytes.NewReader(data)})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return res.Decode(out)
}

func (c *HTTPClient) Register(ctx context.Context, email, password, role string) (*models.User, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role,omitempty"`
	}{Email: email, Password: password, Role: role}

	var user models.User
	if err := c.sendJSON(ctx, http.MethodPost, "/auth/register", body, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login posts the OAuth2 password form. The form content type is set
// explicitly here; the gateway keeps caller-set content types intact.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Token, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	header := http.Header{}
	header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.gw.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Header: header,
		Body:   strings.NewReader(form.Encode()),
	})
	if err != nil {
		return nil, err
	}

	var token models.Token
	if err := res.Decode(&token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (c *HTTPClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/auth/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetProfile returns nil without error when the profile has not been
// filled in yet (the endpoint answers with JSON null).
func (c *HTTPClient) GetProfile(ctx context.Context) (*models.Profile, error) {
	res, err := c.gw.Do(ctx, Request{Path: "/profile/me"})
	if err != nil {
		return nil, err
	}
	if res.IsNull() {
		return nil, nil
	}
	var profile models.Profile
	if err := res.Decode(&profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) SaveProfile(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	var profile models.Profile
	if err := c.sendJSON(ctx, http.MethodPut, "/profile/me", update, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) CreateProvider(ctx context.Context, provider models.ProviderCreate) (*models.Provider, error) {
	var created models.Provider
	if err := c.sendJSON(ctx, http.MethodPost, "/providers", provider, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) ListProviders(ctx context.Context) ([]models.Provider, error) {
	var providers []models.Provider
	if err := c.getJSON(ctx, "/providers", &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (c *HTTPClient) SearchProviders(ctx context.Context, query string) ([]models.Provider, error) {
	var providers []models.Provider
	path := "/providers/search?q=" + url.QueryEscape(query)
	if err := c.getJSON(ctx, path, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

func (c *HTTPClient) ProviderAppointments(ctx context.Context, providerID int64) ([]models.Appointment, error) {
	var appointments []models.Appointment
	path := fmt.Sprintf("/providers/%d/appointments", providerID)
	if err := c.getJSON(ctx, path, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *HTTPClient) BookAppointment(ctx context.Context, booking models.BookingRequest) (*models.Appointment, error) {
	var appt models.Appointment
	if err := c.sendJSON(ctx, http.MethodPost, "/appointments/book", booking, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (c *HTTPClient) MyAppointments(ctx context.Context) ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := c.getJSON(ctx, "/appointments/my", &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (c *HTTPClient) RescheduleAppointment(ctx context.Context, id int64, start, end models.Time) (*models.Appointment, error) {
	body := struct {
		StartTime models.Time `json:"start_time"`
		EndTime   models.Time `json:"end_time"`
	}{StartTime: start, EndTime: end}

	var appt models.Appointment
	path := fmt.Sprintf("/appointments/%d/reschedule", id)
	if err := c.sendJSON(ctx, http.MethodPut, path, body, &appt); err != nil {
		return nil, err
	}
	return &appt, nil
}

func (c *HTTPClient) CancelAppointment(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/appointments/%d", id)
	_, err := c.gw.Do(ctx, Request{Method: http.MethodDelete, Path: path})
	return err
}

func (c *HTTPClient) ProviderDashboard(ctx context.Context) ([]models.ProviderAppointment, error) {
	var rows []models.ProviderAppointment
	if err := c.getJSON(ctx, "/provider-dashboard-list", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	var health struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/health", &health); err != nil {
		return err
	}
	if health.Status != "ok" {
		return ErrUnavailable
	}
	return nil
}
