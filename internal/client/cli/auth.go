package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

// Indirections over the interactive input helpers, swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
	confirm            = Confirm
)

// Login prompts for credentials and authenticates. The remembered email, if
// any, is offered as the default. On success the first page is loaded.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getTextWithDefault(a.reader, "Enter email", a.session.RememberedEmail(), a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	if err := models.ValidateCredentials(email, string(password)); err != nil {
		a.printError(err)
		return err
	}

	remember, err := confirm(a.reader, "Remember email on this device?", a.out)
	if err != nil {
		return err
	}

	reqCtx, cancel := a.withTimeout(ctx)
	_, err = a.session.Login(reqCtx, email, string(password), remember)
	cancel()
	if err != nil {
		a.printError(err)
		return err
	}

	fmt.Fprintln(a.out, "Logged in.")
	return a.List(ctx, []string{"1"})
}

// Logout ends the session. It cannot fail.
func (a *App) Logout(ctx context.Context, _ []string) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
