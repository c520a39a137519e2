package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/easyapt/easyapt-go/internal/client/models"
	"github.com/easyapt/easyapt-go/internal/shared"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for an email and password and creates a new patient
// account via the AuthService.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	user, err := a.authService.Register(ctx, email, string(password), models.RolePatient)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Account created for %s. You can now log in.\n", user.Email)
	return nil
}

// Login prompts for credentials and authenticates. On success the bearer
// token is persisted by the AuthService, so the session survives restarts.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer shared.WipeByteArray(password)

	session, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.userEmail = email
	fmt.Fprintln(a.out, "Login successful")
	if !session.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, "Session valid until %s\n", session.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return nil
}

// Logout drops the stored credential and the in-memory session state.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.userEmail = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI shows the account behind the current session, combining the
// server's view with the locally decoded token claims.
func (a *App) WhoAmI(ctx context.Context) error {
	user, err := a.authService.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s (role: %s)\n", user.Email, user.Role)

	if session, ok := a.authService.Session(); ok && !session.ExpiresAt.IsZero() {
		remaining := time.Until(session.ExpiresAt).Round(time.Second)
		if remaining > 0 {
			fmt.Fprintf(a.out, "Session expires in %s\n", remaining)
		}
	}
	return nil
}

// restoreSession picks up a persisted credential from a previous run.
func (a *App) restoreSession() {
	session, ok := a.authService.Session()
	if !ok {
		return
	}
	if !session.ExpiresAt.IsZero() && session.ExpiresAt.Before(time.Now()) {
		return
	}
	fmt.Fprintln(a.out, "Restored previous session. Use 'whoami' to verify it is still accepted.")
}
