package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/easyapt/easyapt-go/internal/client/credentials"
	"github.com/easyapt/easyapt-go/internal/logging"
)

// sessionExpiredMarker is the substring the backend places in the detail
// field of a 401 when a session lapses from inactivity. It distinguishes
// expiry from an ordinary authentication failure such as a bad password.
const sessionExpiredMarker = "Session expired due to inactivity"

// SessionHandler reacts to a server-signaled session expiry. The gateway
// delegates the user-visible notice and the return to the login surface to
// its owner; the CLI implements this by dropping its session state.
type SessionHandler interface {
	SessionExpired(message string)
}

// Gateway is the chokepoint every API call passes through. It reads the
// credential store on each call, so a login or logout takes effect for the
// next request without rebuilding the client.
type Gateway struct {
	origin  string
	http    *http.Client
	creds   credentials.Store
	session SessionHandler
	logger  logging.Logger
}

// NewGateway creates a Gateway with connection pooling. The timeout bounds
// the whole exchange at the transport level; the gateway itself enforces
// none. The handler may be nil, in which case a session expiry still clears
// the store but notifies nobody.
func NewGateway(origin string, timeout time.Duration, creds credentials.Store, handler SessionHandler, logger logging.Logger) *Gateway {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}

	return &Gateway{
		origin: strings.TrimRight(origin, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
		creds:   creds,
		session: handler,
		logger:  logger.With("component", "gateway"),
	}
}

// Do executes one API call and classifies the response.
//
// Success and failure are decided by the HTTP status alone; the payload is
// parsed according to the declared content type regardless. Transport errors
// are returned unmodified. A 401 carrying the inactivity marker clears the
// credential store, notifies the SessionHandler, and yields
// ErrSessionExpired; every other non-2xx yields an *APIError.
func (g *Gateway) Do(ctx context.Context, req Request) (*Result, error) {
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, g.origin+req.Path, req.Body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	g.fillHeaders(httpReq.Header, req.Header)

	resp, err := g.http.Do(httpReq)
	if err != nil {
		g.logger.Error(ctx, "transport failure", "method", method, "path", req.Path, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		g.logger.Error(ctx, "body read failure", "method", method, "path", req.Path, "error", err)
		return nil, fmt.Errorf("read response body: %w", err)
	}

	res := &Result{StatusCode: resp.StatusCode}
	var structured any
	if isStructured(resp.Header.Get("Content-Type")) {
		if len(body) > 0 {
			if err := json.Unmarshal(body, &structured); err != nil {
				g.logger.Error(ctx, "unparseable response body", "method", method, "path", req.Path, "status", resp.StatusCode, "error", err)
				return nil, fmt.Errorf("parse response body: %w", err)
			}
			res.JSON = json.RawMessage(body)
		}
	} else {
		res.Text = string(body)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return res, nil
	}

	detail, hasDetail := detailField(structured)

	if resp.StatusCode == http.StatusUnauthorized && hasDetail && strings.Contains(detail, sessionExpiredMarker) {
		g.logger.Warn(ctx, "session expired due to inactivity", "path", req.Path)
		g.creds.Clear()
		if g.session != nil {
			g.session.SessionExpired(detail)
		}
		return nil, ErrSessionExpired
	}

	apiErr := newAPIError(resp.StatusCode, detail, hasDetail, res)
	g.logger.Error(ctx, "request failed", "method", method, "path", req.Path, "status", resp.StatusCode, "message", apiErr.Message)
	return nil, apiErr
}

// fillHeaders merges caller headers into h and layers the gateway defaults
// underneath: JSON content type unless the caller declared another one, the
// bearer credential unless the caller set Authorization itself, and a
// request id for diagnostics.
func (g *Gateway) fillHeaders(h http.Header, caller http.Header) {
	for key, values := range caller {
		canonical := http.CanonicalHeaderKey(key)
		h[canonical] = append([]string(nil), values...)
	}
	if h.Get("Content-Type") == "" {
		h.Set("Content-Type", "application/json")
	}
	if h.Get("Authorization") == "" {
		if cred, ok := g.creds.Get(); ok {
			h.Set("Authorization", "Bearer "+cred)
		}
	}
	if h.Get("X-Request-Id") == "" {
		h.Set("X-Request-Id", uuid.NewString())
	}
}

// detailField extracts the backend's conventional {"detail": "..."} error
// field from a structured payload.
func detailField(payload any) (string, bool) {
	obj, ok := payload.(map[string]any)
	if !ok {
		return "", false
	}
	detail, ok := obj["detail"].(string)
	return detail, ok
}
