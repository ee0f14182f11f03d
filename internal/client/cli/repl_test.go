package cli

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context, args []string) error {
	f.loggedIn = true
	return f.record("login", args)
}
func (f *fakeExec) Logout(ctx context.Context, args []string) error {
	f.loggedIn = false
	return f.record("logout", args)
}
func (f *fakeExec) List(ctx context.Context, args []string) error   { return f.record("list", args) }
func (f *fakeExec) Next(ctx context.Context, args []string) error   { return f.record("next", args) }
func (f *fakeExec) Prev(ctx context.Context, args []string) error   { return f.record("prev", args) }
func (f *fakeExec) Show(ctx context.Context, args []string) error   { return f.record("show", args) }
func (f *fakeExec) Search(ctx context.Context, args []string) error { return f.record("search", args) }
func (f *fakeExec) Create(ctx context.Context, args []string) error { return f.record("create", args) }
func (f *fakeExec) Edit(ctx context.Context, args []string) error   { return f.record("edit", args) }
func (f *fakeExec) Delete(ctx context.Context, args []string) error { return f.record("delete", args) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	captureOutput(t)

	input := strings.Join([]string{
		"help",
		"login",
		"help",
		"list 2",
		"next",
		"prev",
		"l",
		"show",
		"search  jan  weaver ",
		"create",
		"edit 7",
		"delete 3",
		"foobar",
		"logout",
		"exit",
		"list",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input))

	want := []string{
		"login", "list 2", "next", "prev", "list", "show", "search jan weaver",
		"create", "edit 7", "delete 3", "logout",
	}
	assert.Equal(t, want, exec.calls)
}

func TestRunREPL_GatesUserCommandsBehindLogin(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "signed out" }, rdr("list\ndelete 1\nlogout\nexit\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Please log in first (type 'login').")
	assert.Contains(t, *out, "ud (signed out)> ")
}

func TestRunREPL_UnknownAndEmptyLines(t *testing.T) {
	out := captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("\n   \nfrobnicate\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Unknown command:frobnicate")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := captureOutput(t)
	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, rdr("help\nquit\n"))
	assert.Contains(t, *out, "Available commands: login, exit")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])

	out = captureOutput(t)
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, rdr("help\n"))
	assert.Contains(t, strings.Join(*out, "\n"), "create, edit <id>, delete <id>")
}
