package cli

import (
	"context"
	"os"

	"github.com/dberezin/bankcli/internal/client/models"
	"github.com/dberezin/bankcli/internal/common"
)

// Profile shows the cached profile, refreshing it first when absent.
func (a *App) Profile(ctx context.Context) error {
	if !a.allowProtected() {
		return nil
	}

	st := a.session.State()
	if st.User == nil {
		if err := a.session.RefreshProfile(ctx); err != nil {
			a.reportError(err)
			return err
		}
		st = a.session.State()
	}

	u := st.User
	printlnFn("=== Profile ===")
	printlnFn("Name:   ", u.FullName())
	printlnFn("Email:  ", u.Email)
	printlnFn("Phone:  ", u.PhoneNum)
	printlnFn("Account:", u.AccountNum)
	printlnFn("Since:  ", u.CreatedAt.Format("2006-01-02"))
	return nil
}

// UpdateProfile prompts for the updatable fields; empty answers are skipped
// and left untouched server-side. The cached profile is replaced only by the
// server's response, never speculatively.
func (a *App) UpdateProfile(ctx context.Context) error {
	if !a.allowProtected() {
		return nil
	}

	var upd models.ProfileUpdate

	email, err := getOptionalText(a.reader, "New email", os.Stdout)
	if err != nil {
		return err
	}
	if email != "" {
		upd.Email = &email
	}

	phone, err := getOptionalText(a.reader, "New phone number", os.Stdout)
	if err != nil {
		return err
	}
	if phone != "" {
		upd.PhoneNum = &phone
	}

	change, err := getSimpleText(a.reader, "Change password? (y/N)", os.Stdout)
	if err != nil {
		return err
	}
	if change == "y" || change == "Y" {
		password, err := getPassword(os.Stdout)
		if err != nil {
			return err
		}
		defer common.WipeByteArray(password)
		p := string(password)
		upd.Password = &p
	}

	if upd.Empty() {
		printlnFn("Nothing to update.")
		return nil
	}

	if _, err := a.session.UpdateProfile(ctx, upd); err != nil {
		a.reportError(err)
		return err
	}

	printlnFn("Profile updated.")
	return nil
}
