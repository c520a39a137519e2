package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easyapt/easyapt-go/internal/client/credentials"
	"github.com/easyapt/easyapt-go/internal/client/models"
)

// capturedCall records what the test server saw.
type capturedCall struct {
	method      string
	path        string
	query       string
	contentType string
	body        []byte
}

// newTestClient wires an HTTPClient to a test server that replies to every
// request with the given status and JSON body, capturing the last call.
func newTestClient(t *testing.T, status int, responseBody string) (*HTTPClient, *capturedCall) {
	t.Helper()
	call := &capturedCall{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call.method = r.Method
		call.path = r.URL.Path
		call.query = r.URL.RawQuery
		call.contentType = r.Header.Get("Content-Type")
		call.body, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(responseBody))
	}))
	t.Cleanup(srv.Close)

	gw := newTestGateway(srv.URL, credentials.NewMemStore(), nil)
	return NewHTTPClient(gw), call
}

func TestHTTPClient_Login_SendsForm(t *testing.T) {
	client, call := newTestClient(t, http.StatusOK,
		`{"access_token":"tok-abc","token_type":"bearer"}`)

	token, err := client.Login(context.Background(), "ann@example.com", "p@ss w0rd")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/auth/login", call.path)
	assert.Equal(t, "application/x-www-form-urlencoded", call.contentType)
	assert.Equal(t, "password=p%40ss+w0rd&username=ann%40example.com", string(call.body))

	assert.Equal(t, "tok-abc", token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
}

func TestHTTPClient_Register(t *testing.T) {
	client, call := newTestClient(t, http.StatusOK,
		`{"id":5,"email":"ann@example.com","role":"patient","created_at":"2026-03-01T09:00:00"}`)

	user, err := client.Register(context.Background(), "ann@example.com", "Str0ng!Password", "")
	require.NoError(t, err)

	assert.Equal(t, "/auth/register", call.path)
	assert.Equal(t, "application/json", call.contentType)
	assert.JSONEq(t, `{"email":"ann@example.com","password":"Str0ng!Password"}`, string(call.body))

	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, models.RolePatient, user.Role)
}

func TestHTTPClient_GetProfile_Null(t *testing.T) {
	client, call := newTestClient(t, http.StatusOK, `null`)

	profile, err := client.GetProfile(context.Background())
	require.NoError(t, err)
	assert.Nil(t, profile)
	assert.Equal(t, "/profile/me", call.path)
}

func TestHTTPClient_SaveProfile(t *testing.T) {
	client, call := newTestClient(t, http.StatusOK,
		`{"id":1,"user_id":5,"full_name":"Ann Lee","date_of_birth":"1990-07-14","phone":"555-0101","insurance":null}`)

	profile, err := client.SaveProfile(context.Background(), models.ProfileUpdate{
		FullName:    "Ann Lee",
		DateOfBirth: models.NewDate(1990, time.July, 14),
		Phone:       "555-0101",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, call.method)
	assert.Equal(t, "/profile/me", call.path)
	assert.JSONEq(t,
		`{"full_name":"Ann Lee","date_of_birth":"1990-07-14","phone":"555-0101"}`,
		string(call.body))
	assert.Equal(t, "Ann Lee", profile.FullName)
	assert.Nil(t, profile.Insurance)
}

func TestHTTPClient_SearchProviders_EscapesQuery(t *testing.T) {
	client, call := newTestClient(t, http.StatusOK,
		`[{"id":2,"name":"Dr. Lee","specialty":"Cardiology","location":null}]`)

	providers, err := client.SearchProviders(context.Background(), "dr lee & co")
	require.NoError(t, err)

	assert.Equal(t, "/providers/search", call.path)
	assert.Equal(t, "q=dr+lee+%26+co", call.query)
	require.Len(t, providers, 1)
	assert.Equal(t, "Dr. Lee", providers[0].Name)
	require.NotNil(t, providers[0].Specialty)
	assert.Equal(t, "Cardiology", *providers[0].Specialty)
}

func TestHTTPClient_BookAppointment(t *testing.T) {
	client, call := newTestClient(t, http.StatusOK, `{
		"id":9,"patient_id":5,"provider_id":2,
		"start_time":"2026-04-01T10:00:00","end_time":"2026-04-01T10:30:00",
		"status":"booked","reason":"checkup","created_at":"2026-03-20T08:00:00"
	}`)

	appt, err := client.BookAppointment(context.Background(), models.BookingRequest{
		ProviderID: 2,
		StartTime:  models.NewTime(time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)),
		EndTime:    models.NewTime(time.Date(2026, 4, 1, 10, 30, 0, 0, time.UTC)),
		Reason:     "checkup",
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, call.method)
	assert.Equal(t, "/appointments/book", call.path)

	var sent map[string]any
	require.NoError(t, json.Unmarshal(call.body, &sent))
	assert.Equal(t, float64(2), sent["provider_id"])
	assert.Equal(t, "2026-04-01T10:00:00Z", sent["start_time"])
	assert.Equal(t, "checkup", sent["reason"])

	assert.Equal(t, int64(9), appt.ID)
	assert.Equal(t, models.StatusBooked, appt.Status)
}

func TestHTTPClient_RescheduleAppointment(t *testing.T) {
	client, call := newTestClient(t, http.StatusOK, `{
		"id":9,"patient_id":5,"provider_id":2,
		"start_time":"2026-04-02T11:00:00","end_time":"2026-04-02T11:30:00",
		"status":"booked","created_at":"2026-03-20T08:00:00"
	}`)

	start := models.NewTime(time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC))
	end := models.NewTime(time.Date(2026, 4, 2, 11, 30, 0, 0, time.UTC))

	appt, err := client.RescheduleAppointment(context.Background(), 9, start, end)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, call.method)
	assert.Equal(t, "/appointments/9/reschedule", call.path)
	assert.JSONEq(t,
		`{"start_time":"2026-04-02T11:00:00Z","end_time":"2026-04-02T11:30:00Z"}`,
		string(call.body))
	assert.Equal(t, time.Date(2026, 4, 2, 11, 0, 0, 0, time.UTC), appt.StartTime.Time)
}

func TestHTTPClient_CancelAppointment(t *testing.T) {
	client, call := newTestClient(t, http.StatusOK, `{"message":"Appointment cancelled"}`)

	err := client.CancelAppointment(context.Background(), 9)
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, call.method)
	assert.Equal(t, "/appointments/9", call.path)
}

func TestHTTPClient_ProviderDashboard(t *testing.T) {
	client, call := newTestClient(t, http.StatusOK, `[
		{"id":9,"start_time":"2026-04-01T10:00:00","end_time":"2026-04-01T10:30:00",
		 "status":"booked","reason":null,"patient_name":"Ann Lee"}
	]`)

	rows, err := client.ProviderDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/provider-dashboard-list", call.path)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].PatientName)
	assert.Equal(t, "Ann Lee", *rows[0].PatientName)
	assert.Nil(t, rows[0].Reason)
}

func TestHTTPClient_Ping(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		client, call := newTestClient(t, http.StatusOK, `{"status":"ok"}`)
		require.NoError(t, client.Ping(context.Background()))
		assert.Equal(t, "/health", call.path)
	})

	t.Run("degraded", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusOK, `{"status":"starting"}`)
		assert.ErrorIs(t, client.Ping(context.Background()), ErrUnavailable)
	})
}

func TestHTTPClient_FailurePropagatesAPIError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusNotFound, `{"detail":"Provider not found."}`)

	_, err := client.BookAppointment(context.Background(), models.BookingRequest{ProviderID: 99})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Provider not found.", apiErr.Message)
}
