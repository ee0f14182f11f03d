package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	List(ctx context.Context, args []string) error
	Next(ctx context.Context, args []string) error
	Prev(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Create(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on end of input or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - help              show available commands
//	  - login             authenticate
//	  - exit | quit       leave the program
//
//	Logged in:
//	  - (l)ist [page]     load a page, or reload the current one
//	  - next | prev       move between pages
//	  - show              print the loaded page again
//	  - search <term>     filter the loaded page
//	  - create            add a user
//	  - edit <id>         change a user
//	  - delete <id>       remove a user
//	  - logout            end the session
//
// The user commands are only dispatched while a.isLoggedIn() holds.
// Handlers report their own errors; the loop ignores them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ud (%s)> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [page], next, prev, show, search <term>, create, edit <id>, delete <id>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}
			continue

		case "login":
			_ = a.Login(ctx, args)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		handler, known := userCommand(a, cmd)
		switch {
		case !known:
			printlnFn("Unknown command:", cmd)
		case !a.isLoggedIn():
			printlnFn("Please log in first (type 'login').")
		default:
			_ = handler(ctx, args)
		}
	}
}

func userCommand(a execIface, cmd string) (func(context.Context, []string) error, bool) {
	switch cmd {
	case "l", "list":
		return a.List, true
	case "next":
		return a.Next, true
	case "prev":
		return a.Prev, true
	case "show":
		return a.Show, true
	case "search":
		return a.Search, true
	case "create":
		return a.Create, true
	case "edit":
		return a.Edit, true
	case "delete":
		return a.Delete, true
	case "logout":
		return a.Logout, true
	}
	return nil, false
}
