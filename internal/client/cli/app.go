package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/easyapt/easyapt-go/internal/client/api"
	"github.com/easyapt/easyapt-go/internal/client/config"
	"github.com/easyapt/easyapt-go/internal/client/credentials"
	"github.com/easyapt/easyapt-go/internal/client/services"
	"github.com/easyapt/easyapt-go/internal/logging"
)

// Mode reflects server reachability as seen by the background watcher.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App holds the state of one interactive session.
type App struct {
	config          *config.Config
	authService     services.AuthService
	profileService  services.ProfileService
	scheduleService services.ScheduleService
	creds           credentials.Store
	logger          logging.Logger

	userEmail string
	Mode      Mode
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp wires the credential store, the request gateway and the services.
// The App itself is the gateway's SessionHandler: a server-signaled expiry
// drops the session state and tells the user to log in again.
func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	credPath := cfg.CredentialFile
	if credPath == "" {
		p, err := credentials.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolve credential path: %w", err)
		}
		credPath = p
	}
	store := credentials.NewFileStore(credPath, logger)

	app := &App{
		config: cfg,
		creds:  store,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	gw := api.NewGateway(cfg.APIBaseURL, cfg.RequestTimeout, store, app, logger)
	client := api.NewHTTPClient(gw)

	app.authService = services.NewAuthService(client, store)
	app.profileService = services.NewProfileService(client)
	app.scheduleService = services.NewScheduleService(client)

	return app, nil
}

// SessionExpired implements api.SessionHandler. The gateway has already
// cleared the credential store; here we surface the notice and return the
// user to the logged-out state.
func (a *App) SessionExpired(message string) {
	a.userEmail = ""
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, message)
	fmt.Fprintln(a.out, "You have been signed out. Use 'login' to start a new session.")
}

func (a *App) isLoggedIn() bool {
	return a.creds.IsAuthenticated()
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
		fmt.Fprintf(a.out, "Switched to %s mode\n", mode)
	}
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

// StartOnlineStatusWatcher periodically probes the health endpoint and
// flips the Mode accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
