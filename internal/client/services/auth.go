// Package services contains application services for the EasyApt client.
// This file defines the authentication service: register, login/logout and
// session introspection.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/easyapt/easyapt-go/internal/client/api"
	"github.com/easyapt/easyapt-go/internal/client/credentials"
	"github.com/easyapt/easyapt-go/internal/client/models"
	"github.com/easyapt/easyapt-go/internal/jwtx"
)

// Session describes the identity behind the stored credential, decoded from
// the bearer token for display purposes. The server remains the authority
// on whether the session is actually still valid.
type Session struct {
	UserID    string
	Role      string
	ExpiresAt time.Time
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: create a new account on the server.
//   - Login: authenticate and persist the bearer credential.
//   - Logout: drop the persisted credential.
//   - Me: fetch the account behind the current credential.
//   - Session: decode the stored credential without a network call.
//   - Ping: check server liveness.
type AuthService interface {
	Register(ctx context.Context, email, password, role string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*Session, error)
	Logout(ctx context.Context)
	Me(ctx context.Context) (*models.User, error)
	Session() (*Session, bool)
	Ping(ctx context.Context) error
}

// authService is the concrete AuthService backed by the API client and the
// credential store.
type authService struct {
	client api.Client
	creds  credentials.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and credential store.
func NewAuthService(client api.Client, creds credentials.Store) AuthService {
	return &authService{client: client, creds: creds}
}

func (a *authService) Register(ctx context.Context, email, password, role string) (*models.User, error) {
	user, err := a.client.Register(ctx, email, password, role)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return user, nil
}

// Login authenticates against the server and stores the bearer token so
// subsequent calls carry it. The returned Session is decoded from the token;
// if the token cannot be decoded the login still holds and an empty Session
// is returned.
func (a *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	token, err := a.client.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	a.creds.Set(token.AccessToken)

	claims, err := jwtx.Inspect(token.AccessToken)
	if err != nil {
		return &Session{}, nil
	}
	return sessionFromClaims(claims), nil
}

// Logout drops the persisted credential. It involves no server call: bearer
// tokens are stateless and simply stop being presented.
func (a *authService) Logout(ctx context.Context) {
	a.creds.Clear()
}

func (a *authService) Me(ctx context.Context) (*models.User, error) {
	return a.client.Me(ctx)
}

// Session decodes the stored credential. The second result is false when no
// credential is stored or it cannot be decoded.
func (a *authService) Session() (*Session, bool) {
	cred, ok := a.creds.Get()
	if !ok {
		return nil, false
	}
	claims, err := jwtx.Inspect(cred)
	if err != nil {
		return nil, false
	}
	return sessionFromClaims(claims), true
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func sessionFromClaims(claims *jwtx.Claims) *Session {
	s := &Session{UserID: claims.UserID(), Role: claims.Role}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s
}
