package cli

import (
	"context"
	"os"

	"github.com/dberezin/bankcli/internal/client/models"
	"github.com/dberezin/bankcli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getOptionalText = GetOptionalText

// Login prompts for credentials and authenticates through the session
// manager. The session manager persists the token and marks the session
// authenticated before the profile fetch lands, so a profile hiccup here
// never surfaces as a login failure.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.session.Login(ctx, email, string(password)); err != nil {
		a.reportError(err)
		return err
	}

	printlnFn("Login successful.")
	return nil
}

// Register prompts for the registration fields and creates the account.
// Registration does not establish a session; the user logs in afterwards.
func (a *App) Register(ctx context.Context) error {
	var reg models.Registration
	var err error

	if reg.FirstName, err = getSimpleText(a.reader, "Enter first name", os.Stdout); err != nil {
		return err
	}
	if reg.LastName, err = getSimpleText(a.reader, "Enter last name", os.Stdout); err != nil {
		return err
	}
	if reg.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}
	if reg.PhoneNum, err = getSimpleText(a.reader, "Enter phone number", os.Stdout); err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	reg.Password = string(password)

	if err := a.session.Register(ctx, reg); err != nil {
		a.reportError(err)
		return err
	}

	printlnFn("Registration successful! You can now login.")
	return nil
}

// Logout clears the persisted credential and resets the session. No network call.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		a.reportError(err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}
