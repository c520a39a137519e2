package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/easyapt/easyapt-go/internal/client/models"
)

const timeDisplayLayout = "2006-01-02 15:04"

// ListProviders prints the provider directory.
func (a *App) ListProviders(ctx context.Context) error {
	providers, err := a.scheduleService.Providers(ctx)
	if err != nil {
		return err
	}
	a.printProviders(providers)
	return nil
}

// SearchProviders prints providers matching the query.
func (a *App) SearchProviders(ctx context.Context, query string) error {
	providers, err := a.scheduleService.SearchProviders(ctx, query)
	if err != nil {
		return err
	}
	if len(providers) == 0 {
		fmt.Fprintf(a.out, "No providers match %q\n", query)
		return nil
	}
	a.printProviders(providers)
	return nil
}

// AddProvider prompts for the provider fields and registers the provider.
// The server rejects the call for non-staff accounts.
func (a *App) AddProvider(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Provider name", a.out)
	if err != nil {
		return err
	}
	specialty, err := getSimpleText(a.reader, "Specialty (optional)", a.out)
	if err != nil {
		return err
	}
	location, err := getSimpleText(a.reader, "Location (optional)", a.out)
	if err != nil {
		return err
	}

	create := models.ProviderCreate{Name: name}
	if specialty != "" {
		create.Specialty = &specialty
	}
	if location != "" {
		create.Location = &location
	}

	provider, err := a.scheduleService.CreateProvider(ctx, create)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Provider created with id %d\n", provider.ID)
	return nil
}

// ShowSlots prints the upcoming booked slots of a provider.
func (a *App) ShowSlots(ctx context.Context, arg string) error {
	providerID, err := parseID(arg)
	if err != nil {
		return err
	}

	slots, err := a.scheduleService.TakenSlots(ctx, providerID)
	if err != nil {
		return err
	}
	if len(slots) == 0 {
		fmt.Fprintln(a.out, "No upcoming appointments, all slots are free")
		return nil
	}

	fmt.Fprintln(a.out, "Taken slots:")
	for _, s := range slots {
		fmt.Fprintf(a.out, "  %s - %s\n",
			s.StartTime.Format(timeDisplayLayout),
			s.EndTime.Format(timeDisplayLayout))
	}
	return nil
}

// Book prompts for a time range and an optional reason, then books.
func (a *App) Book(ctx context.Context, arg string) error {
	providerID, err := parseID(arg)
	if err != nil {
		return err
	}

	start, err := GetTime(a.reader, "Start time", a.out)
	if err != nil {
		return err
	}
	end, err := GetTime(a.reader, "End time", a.out)
	if err != nil {
		return err
	}
	reason, err := getSimpleText(a.reader, "Reason (optional)", a.out)
	if err != nil {
		return err
	}

	appt, err := a.scheduleService.Book(ctx, providerID, start, end, reason)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Booked appointment %d: %s - %s\n",
		appt.ID,
		appt.StartTime.Format(timeDisplayLayout),
		appt.EndTime.Format(timeDisplayLayout))
	return nil
}

// MyAppointments prints the caller's appointments, newest first as the
// server returns them.
func (a *App) MyAppointments(ctx context.Context) error {
	appts, err := a.scheduleService.My(ctx)
	if err != nil {
		return err
	}
	if len(appts) == 0 {
		fmt.Fprintln(a.out, "You have no appointments")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROVIDER\tSTART\tEND\tSTATUS\tREASON")
	for _, appt := range appts {
		reason := ""
		if appt.Reason != nil {
			reason = *appt.Reason
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\n",
			appt.ID,
			appt.ProviderID,
			appt.StartTime.Format(timeDisplayLayout),
			appt.EndTime.Format(timeDisplayLayout),
			appt.Status,
			reason)
	}
	return w.Flush()
}

// Reschedule prompts for a new time range and moves the appointment.
func (a *App) Reschedule(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}

	start, err := GetTime(a.reader, "New start time", a.out)
	if err != nil {
		return err
	}
	end, err := GetTime(a.reader, "New end time", a.out)
	if err != nil {
		return err
	}

	appt, err := a.scheduleService.Reschedule(ctx, id, start, end)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Appointment %d moved to %s - %s\n",
		appt.ID,
		appt.StartTime.Format(timeDisplayLayout),
		appt.EndTime.Format(timeDisplayLayout))
	return nil
}

// Cancel cancels an appointment by id.
func (a *App) Cancel(ctx context.Context, arg string) error {
	id, err := parseID(arg)
	if err != nil {
		return err
	}
	if err := a.scheduleService.Cancel(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Appointment %d cancelled\n", id)
	return nil
}

// Dashboard prints upcoming appointments for a provider account.
func (a *App) Dashboard(ctx context.Context) error {
	rows, err := a.scheduleService.Dashboard(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No upcoming appointments")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTART\tEND\tSTATUS\tPATIENT")
	for _, row := range rows {
		patient := ""
		if row.PatientName != nil {
			patient = *row.PatientName
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			row.ID,
			row.StartTime.Format(timeDisplayLayout),
			row.EndTime.Format(timeDisplayLayout),
			row.Status,
			patient)
	}
	return w.Flush()
}

func (a *App) printProviders(providers []models.Provider) {
	if len(providers) == 0 {
		fmt.Fprintln(a.out, "No providers registered")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSPECIALTY\tLOCATION")
	for _, p := range providers {
		specialty, location := "", ""
		if p.Specialty != nil {
			specialty = *p.Specialty
		}
		if p.Location != nil {
			location = *p.Location
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, specialty, location)
	}
	w.Flush()
}
