package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
)

var errUsage = errors.New("usage")

// List loads the page given as the first argument, or reloads the current
// one, and prints it. Reloading drops local changes.
func (a *App) List(ctx context.Context, args []string) error {
	n := a.users.State().Page
	if len(args) > 0 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Fprintln(a.out, "Usage: list [page]")
			return errUsage
		}
		n = v
	}
	return a.fetch(ctx, n)
}

// Next loads the following page unless the current one is the last.
func (a *App) Next(ctx context.Context, _ []string) error {
	st := a.users.State()
	if st.Page >= st.TotalPages {
		fmt.Fprintln(a.out, "Already on the last page.")
		return nil
	}
	return a.fetch(ctx, st.Page+1)
}

// Prev loads the preceding page unless the current one is the first.
func (a *App) Prev(ctx context.Context, _ []string) error {
	st := a.users.State()
	if st.Page <= 1 {
		fmt.Fprintln(a.out, "Already on the first page.")
		return nil
	}
	return a.fetch(ctx, st.Page-1)
}

func (a *App) fetch(ctx context.Context, n int) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	st, err := a.users.FetchPage(ctx, n)
	if err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintln(a.out, renderPage(st))
	return nil
}

// Show prints the loaded page without contacting the server.
func (a *App) Show(_ context.Context, _ []string) error {
	fmt.Fprintln(a.out, renderPage(a.users.State()))
	return nil
}

// Search prints the loaded users matching the arguments joined by spaces.
func (a *App) Search(_ context.Context, args []string) error {
	term := strings.Join(args, " ")
	found := a.users.Search(term)
	if len(found) == 0 {
		fmt.Fprintf(a.out, "No users match %q.\n", term)
		return nil
	}
	fmt.Fprintln(a.out, renderUsers(found))
	return nil
}

// Create prompts for a new user's fields and adds it to the top of the page.
func (a *App) Create(ctx context.Context, _ []string) error {
	fields, err := a.promptFields(models.UserFields{})
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	u, err := a.users.CreateUser(ctx, fields)
	if err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintf(a.out, "Created user %s.\n", u.ID)
	fmt.Fprintln(a.out, renderPage(a.users.State()))
	return nil
}

// Edit prompts for new values of the user with the given id. The current
// values, when the user is on the loaded page, are the defaults.
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return errUsage
	}
	id := models.ID(args[0])

	var current models.UserFields
	if u, ok := a.findLoaded(id); ok {
		current = u.UserFields
	} else {
		fmt.Fprintf(a.out, "User %s is not on this page.\n", id)
	}

	fields, err := a.promptFields(current)
	if err != nil {
		return err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.users.UpdateUser(ctx, id, fields); err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintf(a.out, "Updated user %s.\n", id)
	fmt.Fprintln(a.out, renderPage(a.users.State()))
	return nil
}

// Delete asks for confirmation and removes the user with the given id.
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return errUsage
	}
	id := models.ID(args[0])

	question := fmt.Sprintf("Delete user %s?", id)
	if u, ok := a.findLoaded(id); ok {
		question = fmt.Sprintf("Delete %s (%s)?", u.FullName(), u.Email)
	}
	ok, err := confirm(a.reader, question, a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	if err := a.users.DeleteUser(ctx, id); err != nil {
		a.printError(err)
		return err
	}
	fmt.Fprintf(a.out, "Deleted user %s.\n", id)
	fmt.Fprintln(a.out, renderPage(a.users.State()))
	return nil
}

func (a *App) findLoaded(id models.ID) (models.User, bool) {
	for _, u := range a.users.State().Records {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (a *App) promptFields(current models.UserFields) (models.UserFields, error) {
	var f models.UserFields
	prompts := []struct {
		label string
		cur   string
		dst   *string
	}{
		{"First name", current.FirstName, &f.FirstName},
		{"Last name", current.LastName, &f.LastName},
		{"Email", current.Email, &f.Email},
		{"Avatar URL", current.AvatarURL, &f.AvatarURL},
	}
	for _, p := range prompts {
		v, err := getTextWithDefault(a.reader, p.label, p.cur, a.out)
		if err != nil {
			return models.UserFields{}, err
		}
		*p.dst = v
	}
	return f, nil
}
