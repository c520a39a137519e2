package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/easyapt/easyapt-go/internal/client/api"
)

func (a *App) getStatus() string {
	s := ""
	if a.userEmail != "" {
		s = a.userEmail + " "
	}
	if a.Mode != "" {
		s = s + string(a.Mode)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) printHelp() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands:")
		fmt.Fprintln(a.out, "  whoami                    show the current account")
		fmt.Fprintln(a.out, "  profile                   show your patient profile")
		fmt.Fprintln(a.out, "  profile-edit              create or update your profile")
		fmt.Fprintln(a.out, "  providers                 list care providers")
		fmt.Fprintln(a.out, "  search <text>             search providers by name or specialty")
		fmt.Fprintln(a.out, "  add-provider              register a new provider (staff only)")
		fmt.Fprintln(a.out, "  slots <provider-id>       show a provider's taken slots")
		fmt.Fprintln(a.out, "  book <provider-id>        book an appointment")
		fmt.Fprintln(a.out, "  my                        list your appointments")
		fmt.Fprintln(a.out, "  reschedule <id>           move an appointment")
		fmt.Fprintln(a.out, "  cancel <id>               cancel an appointment")
		fmt.Fprintln(a.out, "  dashboard                 upcoming appointments (providers)")
		fmt.Fprintln(a.out, "  logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, providers, search <text>, exit")
	}
}

// Root runs the interactive loop until the user exits or input ends.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to EasyApt CLI (type 'help' for commands)")

	a.restoreSession()

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	for {
		fmt.Fprintf(a.out, "easyapt %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "register":
			a.report(a.Register(ctx))
		case "login":
			a.report(a.Login(ctx))
		case "logout":
			a.report(a.Logout(ctx))
		case "whoami":
			a.report(a.WhoAmI(ctx))
		case "profile":
			a.report(a.ShowProfile(ctx))
		case "profile-edit":
			a.report(a.EditProfile(ctx))
		case "providers":
			a.report(a.ListProviders(ctx))
		case "search":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: search <text>")
				continue
			}
			a.report(a.SearchProviders(ctx, strings.Join(args, " ")))
		case "add-provider":
			a.report(a.AddProvider(ctx))
		case "slots":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: slots <provider-id>")
				continue
			}
			a.report(a.ShowSlots(ctx, args[0]))
		case "book":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: book <provider-id>")
				continue
			}
			a.report(a.Book(ctx, args[0]))
		case "my":
			a.report(a.MyAppointments(ctx))
		case "reschedule":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: reschedule <appointment-id>")
				continue
			}
			a.report(a.Reschedule(ctx, args[0]))
		case "cancel":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: cancel <appointment-id>")
				continue
			}
			a.report(a.Cancel(ctx, args[0]))
		case "dashboard":
			a.report(a.Dashboard(ctx))
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

// report prints a command error, if any, in a user-facing form. Session
// expiry is already announced by SessionExpired, so it is swallowed here.
func (a *App) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, api.ErrSessionExpired) {
		return
	}
	if errors.Is(err, io.EOF) {
		return
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		fmt.Fprintln(a.out, "Error:", apiErr.Message)
		return
	}
	fmt.Fprintln(a.out, "Error:", err)
}
