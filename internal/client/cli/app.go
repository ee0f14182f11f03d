package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/userdesk/internal/client/models"
	"github.com/dmitrijs2005/userdesk/internal/client/services"
	"github.com/dmitrijs2005/userdesk/internal/logging"
)

// SessionStore is the part of services.SessionStore the REPL uses.
type SessionStore interface {
	Login(ctx context.Context, email, password string, remember bool) (string, error)
	Logout(ctx context.Context)
	Authenticated() bool
	RememberedEmail() string
}

// CollectionStore is the part of services.CollectionStore the REPL uses.
type CollectionStore interface {
	FetchPage(ctx context.Context, n int) (services.PageState, error)
	CreateUser(ctx context.Context, fields models.UserFields) (models.User, error)
	UpdateUser(ctx context.Context, id models.ID, fields models.UserFields) (models.User, error)
	DeleteUser(ctx context.Context, id models.ID) error
	State() services.PageState
	Search(term string) []models.User
}

type App struct {
	session SessionStore
	users   CollectionStore
	reader  *bufio.Reader
	out     io.Writer
	timeout time.Duration
	logger  logging.Logger
}

// NewApp wires the REPL to the stores. timeout bounds each store call; zero
// disables it.
func NewApp(session SessionStore, users CollectionStore, in io.Reader, out io.Writer, timeout time.Duration, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		session: session,
		users:   users,
		reader:  bufio.NewReader(in),
		out:     out,
		timeout: timeout,
		logger:  logger.With("component", "cli"),
	}
}

// Run greets the user, restores or asks for a session and then blocks in the
// REPL until exit or end of input.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to userdesk (type 'help' for commands)")

	if a.isLoggedIn() {
		_ = a.List(ctx, []string{"1"})
	} else {
		_ = a.Login(ctx, nil)
	}

	runREPL(ctx, a, a.status, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

func (a *App) status() string {
	if !a.isLoggedIn() {
		return "signed out"
	}
	st := a.users.State()
	return fmt.Sprintf("page %d/%d", st.Page, st.TotalPages)
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

// printError shows err the way the user should read it: one line per
// invalid field, or the error's display message.
func (a *App) printError(err error) {
	var ve models.ValidationErrors
	if errors.As(err, &ve) {
		for _, e := range ve {
			fmt.Fprintf(a.out, "  %s\n", e.Message)
		}
		return
	}
	if errors.Is(err, context.DeadlineExceeded) {
		fmt.Fprintln(a.out, "Error: request timed out")
		return
	}
	fmt.Fprintf(a.out, "Error: %s\n", err)
}
