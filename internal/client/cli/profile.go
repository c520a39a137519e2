package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/easyapt/easyapt-go/internal/client/models"
)

const dateInputLayout = "2006-01-02"

// ShowProfile prints the patient profile, or a hint when none exists yet.
func (a *App) ShowProfile(ctx context.Context) error {
	profile, err := a.profileService.Get(ctx)
	if err != nil {
		return err
	}
	if profile == nil {
		fmt.Fprintln(a.out, "No profile yet. Use 'profile-edit' to create one.")
		return nil
	}

	fmt.Fprintf(a.out, "Full name:     %s\n", profile.FullName)
	fmt.Fprintf(a.out, "Date of birth: %s\n", profile.DateOfBirth.Format(dateInputLayout))
	fmt.Fprintf(a.out, "Phone:         %s\n", profile.Phone)
	if profile.Insurance != nil && *profile.Insurance != "" {
		fmt.Fprintf(a.out, "Insurance:     %s\n", *profile.Insurance)
	}
	return nil
}

// EditProfile prompts for the profile fields and saves them. An empty
// insurance answer leaves the field unset.
func (a *App) EditProfile(ctx context.Context) error {
	fullName, err := getSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}

	dobText, err := getSimpleText(a.reader, "Date of birth (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	dob, err := time.Parse(dateInputLayout, dobText)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dobText)
	}

	phone, err := getSimpleText(a.reader, "Phone", a.out)
	if err != nil {
		return err
	}

	insurance, err := getSimpleText(a.reader, "Insurance (optional)", a.out)
	if err != nil {
		return err
	}

	update := models.ProfileUpdate{
		FullName:    fullName,
		DateOfBirth: models.NewDate(dob.Year(), dob.Month(), dob.Day()),
		Phone:       phone,
	}
	if insurance != "" {
		update.Insurance = &insurance
	}

	profile, err := a.profileService.Save(ctx, update)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Profile saved for %s\n", profile.FullName)
	return nil
}
